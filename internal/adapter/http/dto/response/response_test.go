package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"driveway_xpto/internal/domain/entities"
)

func TestDate_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(DateOf(time.Date(2024, 12, 31, 18, 30, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `"2024-12-31"` {
		t.Fatalf("expected date only, got %s", b)
	}
	if DatePtr(nil) != nil {
		t.Fatalf("expected nil for nil time")
	}
}

func TestFromWorkOrderDetails(t *testing.T) {
	b, _ := json.Marshal(FromWorkOrderDetails(nil))
	if string(b) != `{"workOrderDetails":null}` {
		t.Fatalf("unexpected body %s", b)
	}

	billID := int64(8)
	due := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	res := FromWorkOrderDetails(&entities.WorkOrderDetails{
		OrderID: 7, OrderStatus: entities.OrderStatusInProgress, OrderDate: due.AddDate(0, 0, -30),
		BillID: &billID, DueDate: &due,
	})
	b, _ = json.Marshal(res)
	if !strings.Contains(string(b), `"due_date":"2025-01-15"`) || !strings.Contains(string(b), `"order_status":"In Progress"`) {
		t.Fatalf("unexpected body %s", b)
	}
}

func TestFromAggregates_EmptyChildrenAreArrays(t *testing.T) {
	out := FromAggregates([]entities.RequestAggregate{{Request: entities.Request{ID: 10}}})
	b, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, field := range []string{"quotes", "quote_negotiations", "orders", "bills", "bill_negotiations"} {
		if !strings.Contains(string(b), `"`+field+`":[]`) {
			t.Fatalf("expected %s to be an empty array in %s", field, b)
		}
	}
	if !strings.Contains(string(b), `"request_id":10`) {
		t.Fatalf("expected flattened request fields in %s", b)
	}

	b, _ = json.Marshal(FromAggregates(nil))
	if string(b) != "[]" {
		t.Fatalf("expected [], got %s", b)
	}
}

func TestFromQuote(t *testing.T) {
	start := time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC)
	res := FromQuote(entities.Quote{ID: 5, RequestID: 10, WorkStartDate: &start, Status: entities.QuoteStatusPending})
	if res.QuoteID != 5 || res.Status != "pending" || res.WorkEndDate != nil {
		t.Fatalf("unexpected mapping %+v", res)
	}
	b, _ := json.Marshal(res)
	if !strings.Contains(string(b), `"work_start_date":"2024-12-10"`) {
		t.Fatalf("unexpected body %s", b)
	}
}

func TestFromRequestDetail(t *testing.T) {
	res := FromRequestDetail(entities.RequestDetail{Request: entities.Request{ID: 1}, ClientName: "Ana Lee"})
	if res.ClientName != "Ana Lee" {
		t.Fatalf("unexpected mapping %+v", res)
	}
	b, _ := json.Marshal(res)
	if !strings.Contains(string(b), `"image_urls":[]`) {
		t.Fatalf("expected empty image list in %s", b)
	}
}
