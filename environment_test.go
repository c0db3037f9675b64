package sdk

import "testing"

func TestEnvironmentBaseURL(t *testing.T) {
	cases := []struct {
		env     Environment
		want    string
		wantErr bool
	}{
		{EnvironmentDevelopment, developmentBaseURL, false},
		{EnvironmentProduction, productionBaseURL, false},
		{Environment(""), productionBaseURL, false},
		{Environment("staging"), "", true},
	}
	for _, tc := range cases {
		got, err := tc.env.BaseURL()
		if tc.wantErr {
			if err == nil {
				t.Fatalf("expected error for %q", tc.env)
			}
			continue
		}
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tc.env, err)
		}
		if got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestEnvironmentFromString(t *testing.T) {
	cases := []struct {
		in      string
		want    Environment
		wantErr bool
	}{
		{"dev", EnvironmentDevelopment, false},
		{"development", EnvironmentDevelopment, false},
		{"prod", EnvironmentProduction, false},
		{"production", EnvironmentProduction, false},
		{"", EnvironmentProduction, false},
		{"qa", "", true},
	}
	for _, tc := range cases {
		got, err := EnvironmentFromString(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("expected error for %q", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}
