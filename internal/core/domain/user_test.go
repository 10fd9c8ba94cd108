package domain

import "testing"

func TestParseRole_CanonicalAndAliases(t *testing.T) {
	cases := []struct {
		in   string
		want Role
	}{
		{"admin", RoleAdmin},
		{"hub_manager", RoleHubManager},
		{"hub-manager", RoleHubManager},
		{"manager", RoleHubManager},
		{"driver", RoleDriver},
		{"delivery-personnel", RoleDriver},
		{"delivery_personnel", RoleDriver},
		{"operations", RoleOperations},
		{"operator", RoleOperations},
		{"customer", RoleCustomer},
	}
	for _, tc := range cases {
		got, ok := ParseRole(tc.in)
		if !ok {
			t.Errorf("ParseRole(%q): expected ok", tc.in)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseRole_Unknown(t *testing.T) {
	for _, in := range []string{"", "superuser", "ADMIN "} {
		if _, ok := ParseRole(in); ok {
			t.Errorf("ParseRole(%q): expected not ok", in)
		}
	}
}
