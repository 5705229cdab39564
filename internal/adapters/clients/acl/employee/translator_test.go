package employee

import (
	"encoding/json"
	"testing"

	domemp "github.com/jsamuelsen11/payroo-gateway/internal/domain/employee"
)

func TestToDomainEmployee_IDFallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dto  EmployeeDTO
		want string
	}{
		{name: "id", dto: EmployeeDTO{ID: "e-1", StoreID: "66b0"}, want: "e-1"},
		{name: "store id only", dto: EmployeeDTO{StoreID: "66b0"}, want: "66b0"},
		{name: "neither", dto: EmployeeDTO{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ToDomainEmployee(&tt.dto).ID; got != tt.want {
				t.Errorf("ID = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToDomainEmployee_FieldMapping(t *testing.T) {
	t.Parallel()

	got := ToDomainEmployee(&EmployeeDTO{
		ID:             "e-1",
		FirstName:      "Alice",
		LastName:       "Chen",
		Email:          "alice@example.com",
		Type:           "HOURLY",
		BaseHourlyRate: 35,
		SuperRate:      0.115,
		Bank:           BankDTO{BSB: "083-123", Account: "12345678"},
		Status:         "ACTIVE",
	})

	want := domemp.Employee{
		ID:             "e-1",
		FirstName:      "Alice",
		LastName:       "Chen",
		Email:          "alice@example.com",
		Type:           domemp.TypeHourly,
		BaseHourlyRate: 35,
		SuperRate:      0.115,
		Bank:           domemp.Bank{BSB: "083-123", Account: "12345678"},
		Status:         domemp.StatusActive,
	}
	if got != want {
		t.Errorf("ToDomainEmployee() = %+v, want %+v", got, want)
	}
}

func TestToCreateEmployeeRequest_OmitsID(t *testing.T) {
	t.Parallel()

	body, err := json.Marshal(ToCreateEmployeeRequest(&domemp.Employee{
		ID:        "e-1",
		FirstName: "Alice",
		Type:      domemp.TypeHourly,
	}))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	for _, key := range []string{"id", "_id", "status"} {
		if _, ok := fields[key]; ok {
			t.Errorf("body %s has %q", body, key)
		}
	}
	if fields["firstName"] != "Alice" || fields["type"] != "HOURLY" {
		t.Errorf("body = %s, want firstName and type set", body)
	}
}

func TestToPatchEmployeeRequest(t *testing.T) {
	t.Parallel()

	email := "a.chen@example.com"
	inactive := domemp.StatusInactive

	tests := []struct {
		name  string
		patch domemp.Patch
		want  string
	}{
		{name: "empty", patch: domemp.Patch{}, want: `{}`},
		{
			name:  "email and status",
			patch: domemp.Patch{Email: &email, Status: &inactive},
			want:  `{"email":"a.chen@example.com","status":"INACTIVE"}`,
		},
		{
			name:  "bank",
			patch: domemp.Patch{Bank: &domemp.Bank{BSB: "062-000", Account: "87654321"}},
			want:  `{"bank":{"bsb":"062-000","account":"87654321"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			body, err := json.Marshal(ToPatchEmployeeRequest(&tt.patch))
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(body) != tt.want {
				t.Errorf("body = %s, want %s", body, tt.want)
			}
		})
	}
}
