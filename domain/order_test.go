package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCustomerInfoValidate(t *testing.T) {
	cases := []struct {
		name      string
		info      CustomerInfo
		wantField string
	}{
		{"all fields set", CustomerInfo{Name: "Anna", Phone: "+7 900 000-00-00", Address: "Baker st 1"}, ""},
		{"missing name", CustomerInfo{Phone: "+7", Address: "a"}, "name"},
		{"missing phone", CustomerInfo{Name: "Anna", Address: "a"}, "phone"},
		{"missing address", CustomerInfo{Name: "Anna", Phone: "+7"}, "address"},
		{"all empty reports name first", CustomerInfo{}, "name"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := tc.info.Validate()
			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var mf *MissingFieldError
			if !IsMissingFieldError(err) {
				t.Fatalf("expected MissingFieldError, got %v", err)
			}
			mf = err.(*MissingFieldError)
			if mf.Field != tc.wantField {
				t.Fatalf("expected field %q, got %q", tc.wantField, mf.Field)
			}
		})
	}
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{StatusNew, StatusInProgress, StatusCompleted, StatusCancelled} {
		if !s.Valid() {
			t.Errorf("expected %s to be valid", s)
		}
	}
	for _, s := range []OrderStatus{"", "DONE", "new"} {
		if s.Valid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestOrderDateUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want time.Time
	}{
		{"local date time", `"2025-03-14T09:30:00"`, time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)},
		{"rfc3339", `"2025-03-14T09:30:00Z"`, time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)},
		{"fractional seconds", `"2025-03-14T09:30:00.123456789"`, time.Date(2025, 3, 14, 9, 30, 0, 123456789, time.UTC)},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var d OrderDate
			if err := json.Unmarshal([]byte(tc.in), &d); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if !d.Time.Equal(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, d.Time)
			}
		})
	}

	t.Run("garbage rejected", func(t *testing.T) {
		var d OrderDate
		if err := json.Unmarshal([]byte(`"next tuesday"`), &d); err == nil {
			t.Fatal("expected error for unparseable date")
		}
	})

	t.Run("full order decodes", func(t *testing.T) {
		raw := `{"orderId":7,"customerName":"Anna","orderDate":"2025-03-14T09:30:00",` +
			`"status":"NEW","totalAmount":250,"items":[{"breadName":"Rye","quantity":2,"price":50,"subtotal":100}]}`
		var o Order
		if err := json.Unmarshal([]byte(raw), &o); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if o.OrderID != 7 || o.Status != StatusNew || len(o.Items) != 1 {
			t.Fatalf("unexpected order: %+v", o)
		}
		if o.Items[0].Subtotal != 100 {
			t.Fatalf("expected subtotal 100, got %v", o.Items[0].Subtotal)
		}
	})
}

func TestCartLineSubtotal(t *testing.T) {
	l := CartLine{BreadID: 1, Name: "Rye", Price: 50, Quantity: 3}
	if got := l.Subtotal(); got != 150 {
		t.Fatalf("expected 150, got %v", got)
	}
}
