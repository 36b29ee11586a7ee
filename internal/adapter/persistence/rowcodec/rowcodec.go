// Package rowcodec maps orders and feedback to the flat positional row
// layouts of the vendor's spreadsheet. Column order is a wire contract: rows
// are consumed by index, not by header name, so every layout is pinned to
// named column constants under a schema version.
package rowcodec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"phicoffee/internal/domain/entities"
)

// SchemaVersion tags a historical sheet layout. The sheet went through
// incompatible layouts over its life; decode dispatches on the version so a
// drifted layout fails loud instead of misaligning columns.
type SchemaVersion int

const (
	// SchemaOrdersV3 is the current 17-column order layout ("NEW" sheet).
	SchemaOrdersV3 SchemaVersion = 3
	// SchemaFeedbackV1 is the 4-column feedback layout.
	SchemaFeedbackV1 SchemaVersion = 1
)

// SchemaOrdersV3 columns.
const (
	colOrderID = iota
	colTimestamp
	colName
	colPhone
	colNotes
	colPhistaNoIce
	colPhistaIce
	colCaramelNoIce
	colCaramelIce
	colBrownSugarNoIce
	colBrownSugarIce
	colTotalPrice
	colLocation
	colCoordinatesURL
	colInvoiceURL
	colPaymentProofURL
	colStatus

	orderColumnCount
)

var (
	ErrUnsupportedSchema = errors.New("unsupported row schema version")
	ErrUnmappedSelection = errors.New("selection has no sheet column slot")
)

// columnPair is the fixed {withoutIce, withIce} column slot of one product.
type columnPair struct {
	noIceCol int
	iceCol   int
}

// slotFragments is the tagged mapping from product-name fragment to column
// slot. Matching is case-insensitive substring against the catalog key.
var slotFragments = []struct {
	fragment string
	pair     columnPair
}{
	{"phista coffee", columnPair{colPhistaNoIce, colPhistaIce}},
	{"caramel macchiato", columnPair{colCaramelNoIce, colCaramelIce}},
	{"brown sugar", columnPair{colBrownSugarNoIce, colBrownSugarIce}},
}

// Codec encodes orders against one catalog. The catalog-to-slot mapping is
// resolved and validated exhaustively at construction, so an unmapped product
// fails at startup instead of dropping data at write time.
type Codec struct {
	catalog entities.Catalog
	baseURL string
	slots   map[string]columnPair // lowercased catalog key -> slot
}

func NewCodec(catalog entities.Catalog, baseURL string) (*Codec, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	slots := make(map[string]columnPair, len(catalog.Items()))
	for _, item := range catalog.Items() {
		key := strings.ToLower(item.Key)
		matched := false
		for _, slot := range slotFragments {
			if strings.Contains(key, slot.fragment) {
				slots[key] = slot.pair
				matched = true
				break
			}
		}
		if !matched {
			return nil, fmt.Errorf("%w: catalog item %q", ErrUnmappedSelection, item.Key)
		}
	}
	return &Codec{
		catalog: catalog,
		baseURL: strings.TrimRight(baseURL, "/"),
		slots:   slots,
	}, nil
}

// InvoiceURL derives the stored invoice link for an order id.
func (c *Codec) InvoiceURL(orderID string) string {
	return c.baseURL + "/invoice/" + orderID
}

// EncodeOrder maps an order to the SchemaOrdersV3 row. Selections with
// quantity zero are excluded; a selection whose key has no column slot is an
// error, never a silent drop.
func (c *Codec) EncodeOrder(o entities.Order) ([]string, error) {
	row := make([]string, orderColumnCount)
	for _, pair := range c.slots {
		row[pair.noIceCol] = "0"
		row[pair.iceCol] = "0"
	}

	for _, sel := range entities.FilterSelections(o.Selections) {
		pair, ok := c.slots[strings.ToLower(sel.CatalogKey)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnmappedSelection, sel.CatalogKey)
		}
		row[pair.noIceCol] = addCount(row[pair.noIceCol], sel.Ice.WithoutIce)
		row[pair.iceCol] = addCount(row[pair.iceCol], sel.Ice.WithIce)
	}

	location := o.DeliveryLocation
	if o.Channel == entities.ChannelSpot {
		location = o.PickupTime
	}

	row[colOrderID] = o.ID
	row[colTimestamp] = FormatTimestamp(o.CreatedAt)
	row[colName] = o.CustomerName
	row[colPhone] = o.Phone
	row[colNotes] = o.Notes
	row[colTotalPrice] = strconv.FormatInt(o.TotalPrice, 10)
	row[colLocation] = location
	row[colCoordinatesURL] = o.CoordinatesURL
	row[colInvoiceURL] = c.InvoiceURL(o.ID)
	row[colPaymentProofURL] = o.PaymentProofURL
	row[colStatus] = string(o.Status)
	return row, nil
}

// DecodeOrder reverses EncodeOrder for the given schema version. The result
// is a display-oriented projection: selections come back in catalog order.
func (c *Codec) DecodeOrder(version SchemaVersion, row []string) (entities.Order, error) {
	if version != SchemaOrdersV3 {
		return entities.Order{}, fmt.Errorf("%w: %d", ErrUnsupportedSchema, version)
	}

	createdAt, err := ParseTimestamp(cell(row, colTimestamp))
	if err != nil {
		return entities.Order{}, fmt.Errorf("row timestamp: %w", err)
	}

	var total int64
	if raw := cell(row, colTotalPrice); raw != "" {
		total, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return entities.Order{}, fmt.Errorf("row total price: %w", err)
		}
	}

	var selections []entities.CoffeeSelection
	for _, item := range c.catalog.Items() {
		pair := c.slots[strings.ToLower(item.Key)]
		noIce, err := parseCount(cell(row, pair.noIceCol))
		if err != nil {
			return entities.Order{}, fmt.Errorf("row count for %q: %w", item.Key, err)
		}
		withIce, err := parseCount(cell(row, pair.iceCol))
		if err != nil {
			return entities.Order{}, fmt.Errorf("row count for %q: %w", item.Key, err)
		}
		if noIce+withIce > 0 {
			selections = append(selections, entities.CoffeeSelection{
				CatalogKey: item.Key,
				Ice:        entities.IceSplit{WithIce: withIce, WithoutIce: noIce},
			})
		}
	}

	o := entities.Order{
		ID:              cell(row, colOrderID),
		CreatedAt:       createdAt,
		CustomerName:    cell(row, colName),
		Phone:           cell(row, colPhone),
		Notes:           cell(row, colNotes),
		CoordinatesURL:  cell(row, colCoordinatesURL),
		Selections:      selections,
		TotalPrice:      total,
		PaymentProofURL: cell(row, colPaymentProofURL),
		Status:          entities.OrderStatus(cell(row, colStatus)),
	}

	// Spot order ids carry the SPOT prefix; their location column holds the
	// pickup time instead of a delivery address.
	if strings.HasPrefix(o.ID, entities.OrderIDPrefixSpot+"-") {
		o.Channel = entities.ChannelSpot
		o.PickupTime = cell(row, colLocation)
	} else {
		o.Channel = entities.ChannelDelivery
		o.DeliveryLocation = cell(row, colLocation)
	}
	return o, nil
}

// EncodeFeedback maps feedback to the SchemaFeedbackV1 row.
func EncodeFeedback(f entities.Feedback) []string {
	return []string{
		f.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z"),
		f.OrderID,
		strconv.Itoa(f.Rating),
		f.Comment,
	}
}

// SelectionsText renders selections as the human-readable list used in the
// notification message, e.g.
// "phista coffee (2 with ice, 1 without ice); Phicoffee Brown Sugar (1 with ice)".
// Zero-quantity selections and zero halves are omitted.
func SelectionsText(selections []entities.CoffeeSelection) string {
	parts := make([]string, 0, len(selections))
	for _, sel := range entities.FilterSelections(selections) {
		var ice []string
		if sel.Ice.WithIce > 0 {
			ice = append(ice, fmt.Sprintf("%d with ice", sel.Ice.WithIce))
		}
		if sel.Ice.WithoutIce > 0 {
			ice = append(ice, fmt.Sprintf("%d without ice", sel.Ice.WithoutIce))
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", sel.CatalogKey, strings.Join(ice, ", ")))
	}
	return strings.Join(parts, "; ")
}

// cell tolerates short rows: the sheet API omits trailing empty cells.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func parseCount(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func addCount(current string, n int) string {
	prev, _ := strconv.Atoi(current)
	return strconv.Itoa(prev + n)
}
