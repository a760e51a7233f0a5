package appointment

import "context"

// SlotKey identifica um cálculo de horários ocupados.
type SlotKey struct {
	EmployeeID  uint
	Date        string
	Duration    int
	ExcludingID uint
}

// SlotCache guarda horários ocupados por barbeiro/dia. Falhas do cache
// nunca são fatais: Get devolve miss e Set/Invalidate apenas registram.
//
// Get devolve também a geração atual do dia, mesmo em miss. Set só grava
// se a geração ainda for a mesma: uma escrita que invalidou o dia entre a
// leitura do banco e o Set descarta o resultado antigo.
type SlotCache interface {
	Get(ctx context.Context, key SlotKey) (occupied []string, generation string, hit bool)
	Set(ctx context.Context, key SlotKey, generation string, occupied []string)
	Invalidate(ctx context.Context, employeeID uint, date string)
	InvalidateAll(ctx context.Context)
}

type NopSlotCache struct{}

func (NopSlotCache) Get(context.Context, SlotKey) ([]string, string, bool) { return nil, "", false }
func (NopSlotCache) Set(context.Context, SlotKey, string, []string)        {}
func (NopSlotCache) Invalidate(context.Context, uint, string)              {}
func (NopSlotCache) InvalidateAll(context.Context)                         {}
