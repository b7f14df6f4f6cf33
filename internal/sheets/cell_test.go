package sheets

import "testing"

func TestNum(t *testing.T) {
	if got := Num(""); got != nil {
		t.Fatalf("Num(\"\") = %v, want nil", *got)
	}
	if got := Num("   "); got != nil {
		t.Fatalf("Num(blank) = %v, want nil", *got)
	}
	if got := Num("abc"); got != nil {
		t.Fatalf("Num(abc) = %v, want nil", *got)
	}
	if got := Num("1850000"); got == nil || *got != 1_850_000 {
		t.Fatalf("Num(1850000) = %v", got)
	}
	if got := Num("1,234,567"); got == nil || *got != 1_234_567 {
		t.Fatalf("grouped number = %v", got)
	}
	if got := Num("510207.176"); got == nil || *got != 510_207.176 {
		t.Fatalf("decimal number = %v", got)
	}
	if got := Num("-150000"); got == nil || *got != -150_000 {
		t.Fatalf("negative number = %v", got)
	}
}

func TestNumOr(t *testing.T) {
	if got := NumOr("", 0); got != 0 {
		t.Fatalf("NumOr empty = %v", got)
	}
	if got := NumOr("garbage", 0); got != 0 {
		t.Fatalf("NumOr garbage = %v", got)
	}
	if got := NumOr("42", 0); got != 42 {
		t.Fatalf("NumOr(42) = %v", got)
	}
}

func TestStr(t *testing.T) {
	if got := Str("  Package A  "); got != "Package A" {
		t.Fatalf("Str trimmed = %q", got)
	}
	if got := Str(""); got != "" {
		t.Fatalf("Str empty = %q", got)
	}
}
