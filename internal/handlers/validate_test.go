package handlers

import "testing"

func TestValidateStructPassesValidInput(t *testing.T) {
	req := registerRequest{Name: "Dana", Email: "dana@example.com", Password: "longenough"}
	if fields := validateStruct(req); fields != nil {
		t.Fatalf("expected no validation failures, got %v", fields)
	}
}

func TestValidateStructFlattensFailures(t *testing.T) {
	req := registerRequest{Name: "", Email: "not-an-email", Password: "short"}
	fields := validateStruct(req)
	if fields == nil {
		t.Fatal("expected validation failures")
	}

	if got := fields["name"]; got != "is required" {
		t.Errorf("name: got %q", got)
	}
	if got := fields["email"]; got != "must be a valid email address" {
		t.Errorf("email: got %q", got)
	}
	if got := fields["password"]; got != "must be at least 8" {
		t.Errorf("password: got %q", got)
	}
}

func TestValidateStructOneofMessage(t *testing.T) {
	req := startChatRequest{ProfessionalType: "plumber", ProfessionalID: 1}
	fields := validateStruct(req)
	if fields == nil {
		t.Fatal("expected validation failures")
	}
	if got := fields["professionaltype"]; got != "must be one of: coach clinic therapist" {
		t.Errorf("professional_type: got %q", got)
	}
}
