package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus estado cerrado de una factura.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// Valid indica si el estado pertenece al conjunto cerrado.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}

// InvoiceItem línea de detalle de una factura.
type InvoiceItem struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

// Invoice factura de la colección financeInvoices.
// Con SourceSaleID es una factura derivada de una venta POS; sin él es manual y el motor no la toca.
type Invoice struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"`
	ClientName    string          `json:"clientName"`
	ClientEmail   string          `json:"clientEmail"`
	Amount        decimal.Decimal `json:"amount"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	IssueDate     time.Time       `json:"issueDate"`
	DueDate       time.Time       `json:"dueDate"`
	Status        InvoiceStatus   `json:"status"`
	PaidAt        *time.Time      `json:"paidAt,omitempty"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Items         []InvoiceItem   `json:"items"`
	SourceSaleID  string          `json:"sourceSaleId,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	Currency      string          `json:"currency,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`

	// raw bytes con los que se leyó la factura; ver MarshalJSON.
	raw json.RawMessage
}

// IsDerived factura generada desde una venta POS.
func (i Invoice) IsDerived() bool {
	return i.SourceSaleID != ""
}

var errNotObject = errors.New("factura: se esperaba un objeto JSON")

// invoiceFields misma forma JSON que Invoice, sin los métodos de serialización.
type invoiceFields Invoice

// UnmarshalJSON decodifica la factura y guarda los bytes originales.
func (i *Invoice) UnmarshalJSON(data []byte) error {
	var f invoiceFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*i = Invoice(f)
	i.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON devuelve los bytes originales si la factura no cambió desde que se leyó.
// Si cambió, solo se reescriben sobre el objeto original las claves modificadas;
// los campos que el struct no conoce se mantienen.
func (i Invoice) MarshalJSON() ([]byte, error) {
	current, err := marshalNoEscape(invoiceFields(i))
	if err != nil {
		return nil, err
	}
	if len(i.raw) == 0 {
		return current, nil
	}
	var decoded invoiceFields
	if err := json.Unmarshal(i.raw, &decoded); err != nil {
		return current, nil
	}
	original, err := marshalNoEscape(decoded)
	if err != nil {
		return nil, err
	}
	if bytes.Equal(current, original) {
		return i.raw, nil
	}
	return patchObject(i.raw, original, current)
}

// patchObject aplica sobre raw las claves que difieren entre original y current,
// respetando el orden y los bytes de las claves que no cambian.
func patchObject(raw, original, current []byte) ([]byte, error) {
	base, err := objectMembers(raw)
	if err != nil {
		return current, nil
	}
	before, err := objectMembers(original)
	if err != nil {
		return nil, err
	}
	after, err := objectMembers(current)
	if err != nil {
		return nil, err
	}
	prev := make(map[string]json.RawMessage, len(before))
	for _, m := range before {
		prev[m.key] = m.value
	}
	next := make(map[string]json.RawMessage, len(after))
	for _, m := range after {
		next[m.key] = m.value
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	written := make(map[string]bool, len(base))
	write := func(key string, value json.RawMessage) error {
		k, err := marshalNoEscape(key)
		if err != nil {
			return err
		}
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(value)
		written[key] = true
		return nil
	}
	for _, m := range base {
		value := m.value
		old, inPrev := prev[m.key]
		v, inNext := next[m.key]
		switch {
		case inPrev && !inNext:
			continue
		case inNext && !bytes.Equal(old, v):
			value = v
		}
		if err := write(m.key, value); err != nil {
			return nil, err
		}
	}
	for _, m := range after {
		if written[m.key] || bytes.Equal(prev[m.key], m.value) {
			continue
		}
		if err := write(m.key, m.value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type member struct {
	key   string
	value json.RawMessage
}

// objectMembers miembros de un objeto JSON en el orden en que aparecen.
func objectMembers(data []byte) ([]member, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errNotObject
	}
	var out []member
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		out = append(out, member{key: key, value: value})
	}
	return out, nil
}

// marshalNoEscape como json.Marshal pero sin escapar <, > y &.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
