package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/payroo-gateway/internal/domain"
	"github.com/jsamuelsen11/payroo-gateway/internal/domain/employee"
	"github.com/jsamuelsen11/payroo-gateway/internal/platform/telemetry"
	"github.com/jsamuelsen11/payroo-gateway/mocks"
)

func TestEmployeeService_ListEmployees(t *testing.T) {
	t.Parallel()

	want := []employee.Employee{validEmployee()}

	t.Run("cache hit skips the backend", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockPayrollClient(t)
		cache := mocks.NewMockEmployeeCache(t)
		metrics, reader := testMetrics(t)
		svc := NewEmployeeService(client, cache, "memory", metrics, discardLogger())

		cache.EXPECT().GetEmployees(mock.Anything).Return(want, true, nil)

		got, err := svc.ListEmployees(context.Background())
		if err != nil {
			t.Fatalf("ListEmployees() error = %v", err)
		}
		if len(got) != 1 || got[0].ID != "e-1" {
			t.Errorf("ListEmployees() = %v, want %v", got, want)
		}
		if n := counterValue(t, reader, "payroo.cache.lookups", telemetry.AttrResult.String(telemetry.ResultHit)); n != 1 {
			t.Errorf("cache hits = %d, want 1", n)
		}
	})

	t.Run("cache miss fetches and fills", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockPayrollClient(t)
		cache := mocks.NewMockEmployeeCache(t)
		metrics, reader := testMetrics(t)
		svc := NewEmployeeService(client, cache, "redis", metrics, discardLogger())

		cache.EXPECT().GetEmployees(mock.Anything).Return(nil, false, nil)
		client.EXPECT().ListEmployees(mock.Anything).Return(want, nil)
		cache.EXPECT().SetEmployees(mock.Anything, want).Return(nil)

		if _, err := svc.ListEmployees(context.Background()); err != nil {
			t.Fatalf("ListEmployees() error = %v", err)
		}
		if n := counterValue(t, reader, "payroo.cache.lookups", telemetry.AttrCache.String("redis")); n != 1 {
			t.Errorf("redis lookups = %d, want 1", n)
		}
	})

	t.Run("cache failures fall through to the backend", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockPayrollClient(t)
		cache := mocks.NewMockEmployeeCache(t)
		svc := NewEmployeeService(client, cache, "redis", nil, discardLogger())

		cache.EXPECT().GetEmployees(mock.Anything).Return(nil, false, errors.New("dial tcp: refused"))
		client.EXPECT().ListEmployees(mock.Anything).Return(want, nil)
		cache.EXPECT().SetEmployees(mock.Anything, want).Return(errors.New("dial tcp: refused"))

		got, err := svc.ListEmployees(context.Background())
		if err != nil {
			t.Fatalf("ListEmployees() error = %v, want nil", err)
		}
		if len(got) != 1 {
			t.Errorf("len(ListEmployees()) = %d, want 1", len(got))
		}
	})

	t.Run("no cache configured", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockPayrollClient(t)
		svc := NewEmployeeService(client, nil, "none", nil, nil)

		client.EXPECT().ListEmployees(mock.Anything).Return(want, nil).Twice()

		for range 2 {
			if _, err := svc.ListEmployees(context.Background()); err != nil {
				t.Fatalf("ListEmployees() error = %v", err)
			}
		}
	})

	t.Run("backend error is not cached", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockPayrollClient(t)
		cache := mocks.NewMockEmployeeCache(t)
		svc := NewEmployeeService(client, cache, "memory", nil, discardLogger())

		cache.EXPECT().GetEmployees(mock.Anything).Return(nil, false, nil)
		client.EXPECT().ListEmployees(mock.Anything).Return(nil, domain.ErrUnavailable)

		if _, err := svc.ListEmployees(context.Background()); !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("ListEmployees() error = %v, want ErrUnavailable", err)
		}
	})
}

func TestEmployeeService_CreateEmployee(t *testing.T) {
	t.Parallel()

	t.Run("creates and invalidates", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockPayrollClient(t)
		cache := mocks.NewMockEmployeeCache(t)
		svc := NewEmployeeService(client, cache, "memory", nil, discardLogger())

		emp := validEmployee()
		emp.ID = ""
		created := validEmployee()
		client.EXPECT().CreateEmployee(mock.Anything, &emp).Return(&created, nil)
		cache.EXPECT().InvalidateEmployees(mock.Anything).Return(nil)

		got, err := svc.CreateEmployee(context.Background(), &emp)
		if err != nil {
			t.Fatalf("CreateEmployee() error = %v", err)
		}
		if got.ID != "e-1" {
			t.Errorf("CreateEmployee().ID = %q, want e-1", got.ID)
		}
	})

	t.Run("invalid employee never reaches the backend", func(t *testing.T) {
		t.Parallel()
		svc := NewEmployeeService(mocks.NewMockPayrollClient(t), mocks.NewMockEmployeeCache(t), "memory", nil, discardLogger())

		emp := validEmployee()
		emp.Email = ""
		if _, err := svc.CreateEmployee(context.Background(), &emp); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("CreateEmployee() error = %v, want ErrValidation", err)
		}
	})

	t.Run("failed create keeps the cache", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockPayrollClient(t)
		svc := NewEmployeeService(client, mocks.NewMockEmployeeCache(t), "memory", nil, discardLogger())

		emp := validEmployee()
		client.EXPECT().CreateEmployee(mock.Anything, &emp).Return(nil, domain.ErrConflict)

		if _, err := svc.CreateEmployee(context.Background(), &emp); !errors.Is(err, domain.ErrConflict) {
			t.Errorf("CreateEmployee() error = %v, want ErrConflict", err)
		}
	})
}

func TestEmployeeService_UpdateEmployee(t *testing.T) {
	t.Parallel()

	status := employee.StatusInactive

	t.Run("updates and invalidates", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockPayrollClient(t)
		cache := mocks.NewMockEmployeeCache(t)
		svc := NewEmployeeService(client, cache, "memory", nil, discardLogger())

		patch := &employee.Patch{Status: &status}
		updated := validEmployee()
		updated.Status = status
		client.EXPECT().UpdateEmployee(mock.Anything, "e-1", patch).Return(&updated, nil)
		cache.EXPECT().InvalidateEmployees(mock.Anything).Return(errors.New("redis down"))

		got, err := svc.UpdateEmployee(context.Background(), "e-1", patch)
		if err != nil {
			t.Fatalf("UpdateEmployee() error = %v, want nil despite cache failure", err)
		}
		if got.Status != employee.StatusInactive {
			t.Errorf("UpdateEmployee().Status = %q, want INACTIVE", got.Status)
		}
	})

	t.Run("empty patch", func(t *testing.T) {
		t.Parallel()
		svc := NewEmployeeService(mocks.NewMockPayrollClient(t), nil, "none", nil, discardLogger())

		if _, err := svc.UpdateEmployee(context.Background(), "e-1", &employee.Patch{}); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("UpdateEmployee() error = %v, want ErrValidation", err)
		}
	})

	t.Run("unknown employee", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockPayrollClient(t)
		svc := NewEmployeeService(client, nil, "none", nil, discardLogger())

		patch := &employee.Patch{Status: &status}
		client.EXPECT().UpdateEmployee(mock.Anything, "nope", patch).Return(nil, domain.ErrNotFound)

		if _, err := svc.UpdateEmployee(context.Background(), "nope", patch); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("UpdateEmployee() error = %v, want ErrNotFound", err)
		}
	})
}
