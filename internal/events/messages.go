package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/loqeyusa/housingsupport/internal/finance"
)

// MonthChanged announces that a ClientMonth's records changed. Consumers
// reload the month themselves.
type MonthChanged struct {
	ClientMonthID uuid.UUID `json:"client_month_id"`
	ClientID      uuid.UUID `json:"client_id"`
	Year          int       `json:"year"`
	Month         int       `json:"month"`
	Timestamp     time.Time `json:"timestamp"`
}

func NewMonthChanged(m *finance.ClientMonth, at time.Time) *MonthChanged {
	return &MonthChanged{
		ClientMonthID: m.ID,
		ClientID:      m.ClientID,
		Year:          m.Period.Year,
		Month:         m.Period.Month,
		Timestamp:     at,
	}
}

func (m *MonthChanged) Encode() ([]byte, error) {
	return json.Marshal(m)
}

func DecodeMonthChanged(data []byte) (*MonthChanged, error) {
	var msg MonthChanged
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}

	if msg.ClientMonthID == uuid.Nil {
		return nil, fmt.Errorf("message has no client_month_id")
	}

	return &msg, nil
}
