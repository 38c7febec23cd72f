package logging

import (
	"encoding/json"
	"log"
	"time"
)

// Fields is the fixed shape of a log line. Empty fields are omitted.
type Fields struct {
	Service string `json:"service"`
	OrderID string `json:"order_id,omitempty"`
	Product string `json:"product,omitempty"`
	Step    string `json:"step,omitempty"`
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}

// Log writes one JSON line with a UTC timestamp appended.
func Log(fields Fields) {
	payload := map[string]any{
		"service":   fields.Service,
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	}
	if fields.OrderID != "" {
		payload["order_id"] = fields.OrderID
	}
	if fields.Product != "" {
		payload["product"] = fields.Product
	}
	if fields.Step != "" {
		payload["step"] = fields.Step
	}
	if fields.Status != "" {
		payload["status"] = fields.Status
	}
	if fields.Message != "" {
		payload["message"] = fields.Message
	}
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("{\"service\":%q,\"status\":\"log_error\",\"error\":%q}", fields.Service, err.Error())
		return
	}
	log.Print(string(data))
}
