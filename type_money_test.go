package standings

import "testing"

func TestMoneyString(t *testing.T) {
	testCases := []struct {
		name string
		m    Money
		want string
	}{
		{name: "usd", m: M(1234.5, "USD"), want: "$1,234.50"},
		{name: "usd negative", m: M(-25.5, "USD"), want: "-$25.50"},
		{name: "no currency", m: M(42.0, ""), want: "42.00"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.m.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := M(10, "").SignedString(); got != "+10.00" {
		t.Errorf("SignedString(10) = %q, want +10.00", got)
	}
	if got := M(-10, "").SignedString(); got != "-10.00" {
		t.Errorf("SignedString(-10) = %q, want -10.00", got)
	}
	if got := M(0, "").SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want -", got)
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := M(150, "USD")
	b := M(100, "USD")

	if got := a.Sub(b); !got.Equal(M(50, "USD")) {
		t.Errorf("150 - 100 = %v, want 50", got)
	}
	if got := b.Sub(a); !got.IsNegative() {
		t.Errorf("100 - 150 = %v, want negative", got)
	}
	if got := a.Add(b).DivInt(2); !got.Equal(M(125, "USD")) {
		t.Errorf("(150+100)/2 = %v, want 125", got)
	}
	// The "" currency is weak: it adopts the other side's currency.
	if got := M(0, "").Add(a); got.Currency() != "USD" {
		t.Errorf("weak currency add = %q, want USD", got.Currency())
	}
}
