package desktop

import "testing"

func TestNewUserPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected NewUser to panic for an out-of-range index")
		}
	}()
	NewUser(5, 5)
}

func TestNewUserEqualityIsStructural(t *testing.T) {
	a := NewUser(2, 5)
	b := NewUser(2, 5)
	c := NewUser(3, 5)
	if a != b {
		t.Fatalf("expected User(2) == User(2)")
	}
	if a == c {
		t.Fatalf("expected User(2) != User(3)")
	}
}

func TestPredicates(t *testing.T) {
	cases := []struct {
		d              Desktop
		user, all, transient bool
	}{
		{NewUser(0, 5), true, false, false},
		{AllDesktops, false, true, false},
		{IconDesktop, false, false, true},
		{MovingDesktop, false, false, true},
		{ResizingDesktop, false, false, true},
	}
	for _, c := range cases {
		if c.d.IsUser() != c.user {
			t.Errorf("%v: IsUser() = %v, want %v", c.d, c.d.IsUser(), c.user)
		}
		if c.d.IsAll() != c.all {
			t.Errorf("%v: IsAll() = %v, want %v", c.d, c.d.IsAll(), c.all)
		}
		if c.d.IsTransient() != c.transient {
			t.Errorf("%v: IsTransient() = %v, want %v", c.d, c.d.IsTransient(), c.transient)
		}
	}
}

func TestZeroIsNeitherUserNorAllNorTransient(t *testing.T) {
	if Zero.IsUserOrAll() || Zero.IsTransient() {
		t.Fatalf("expected Zero to be outside every recognized category")
	}
	if Zero == NewUser(0, 5) {
		t.Fatalf("expected Zero to never equal a real user desktop")
	}
}

func TestString(t *testing.T) {
	if got := NewUser(3, 5).String(); got != "User(3)" {
		t.Fatalf("String() = %q, want User(3)", got)
	}
	if got := AllDesktops.String(); got != "AllDesktops" {
		t.Fatalf("String() = %q, want AllDesktops", got)
	}
}
