package models

import "testing"

func TestRoleTypeValid(t *testing.T) {
	tests := []struct {
		role RoleType
		want bool
	}{
		{RoleAdmin, true},
		{RoleTeacher, true},
		{RoleStudent, true},
		{RoleType("MANAGER"), false},
		{RoleType("admin"), false},
		{RoleType(""), false},
	}

	for _, tt := range tests {
		if got := tt.role.Valid(); got != tt.want {
			t.Errorf("RoleType(%q).Valid() = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestEffectiveRole(t *testing.T) {
	tests := []struct {
		name  string
		roles []RoleType
		want  RoleType
	}{
		{name: "admin outranks everything", roles: []RoleType{RoleStudent, RoleAdmin, RoleTeacher}, want: RoleAdmin},
		{name: "teacher outranks student", roles: []RoleType{RoleStudent, RoleTeacher}, want: RoleTeacher},
		{name: "single role", roles: []RoleType{RoleStudent}, want: RoleStudent},
		{name: "no roles", roles: nil, want: RoleType("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffectiveRole(tt.roles...); got != tt.want {
				t.Errorf("EffectiveRole(%v) = %q, want %q", tt.roles, got, tt.want)
			}
		})
	}
}

func TestUserFullName(t *testing.T) {
	u := &User{FirstName: "Ada", LastName: "Lovelace"}
	if got := u.FullName(); got != "Ada Lovelace" {
		t.Errorf("FullName() = %q, want %q", got, "Ada Lovelace")
	}
}
