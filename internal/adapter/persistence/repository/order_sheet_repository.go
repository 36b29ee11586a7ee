package repository

import (
	"context"

	"phicoffee/internal/adapter/persistence/rowcodec"
	"phicoffee/internal/domain/entities"
	"phicoffee/internal/usecase/interfaces"
)

const (
	defaultOrdersAppendRange = "NEW!A1:Q1"
	defaultOrdersReadRange   = "NEW!A2:Q"
)

// OrderSheetRepository persists orders as positional rows on the vendor's
// spreadsheet.
//
// Storage model:
//   - one append per order, never an in-place update
//   - FindByID fetches the full read range and linear-scans the first column;
//     O(n) in existing orders, no indexing

type OrderSheetRepository struct {
	store       interfaces.IRowStore
	codec       *rowcodec.Codec
	appendRange string
	readRange   string
}

var _ interfaces.IOrderRepository = (*OrderSheetRepository)(nil)

func NewOrderSheetRepository(store interfaces.IRowStore, codec *rowcodec.Codec) *OrderSheetRepository {
	return &OrderSheetRepository{
		store:       store,
		codec:       codec,
		appendRange: getenvDefault("ORDERS_APPEND_RANGE", defaultOrdersAppendRange),
		readRange:   getenvDefault("ORDERS_READ_RANGE", defaultOrdersReadRange),
	}
}

func (r *OrderSheetRepository) Append(ctx context.Context, o entities.Order) error {
	row, err := r.codec.EncodeOrder(o)
	if err != nil {
		return err
	}
	return r.store.AppendRow(ctx, r.appendRange, row)
}

func (r *OrderSheetRepository) FindByID(ctx context.Context, id string) (entities.Order, bool, error) {
	rows, err := r.store.GetRows(ctx, r.readRange)
	if err != nil {
		return entities.Order{}, false, err
	}
	for _, row := range rows {
		if len(row) > 0 && row[0] == id {
			o, err := r.codec.DecodeOrder(rowcodec.SchemaOrdersV3, row)
			if err != nil {
				return entities.Order{}, false, err
			}
			return o, true, nil
		}
	}
	return entities.Order{}, false, nil
}
