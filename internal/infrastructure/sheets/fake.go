package sheets

import (
	"context"
	"fmt"
	"sync"
)

var _ Store = (*FakeStore)(nil)

// FakeStore é uma implementação em memória de Store para testes. Guarda só as
// linhas de dados por aba, com a mesma convenção de endereçamento da planilha
// real (linha 1 = cabeçalho, dados a partir da linha 2).
type FakeStore struct {
	mu   sync.Mutex
	abas map[string][][]string
}

// NewFakeStore cria o store vazio; Seed popula abas individualmente.
func NewFakeStore() *FakeStore {
	return &FakeStore{abas: make(map[string][][]string)}
}

// Seed substitui as linhas de dados de uma aba.
func (f *FakeStore) Seed(aba string, rows [][]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copia := make([][]string, len(rows))
	for i, r := range rows {
		copia[i] = append([]string(nil), r...)
	}
	f.abas[aba] = copia
}

// Rows devolve uma cópia das linhas de dados atuais, para asserções.
func (f *FakeStore) Rows(aba string) [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	rows := f.abas[aba]
	copia := make([][]string, len(rows))
	for i, r := range rows {
		copia[i] = append([]string(nil), r...)
	}
	return copia
}

func (f *FakeStore) ReadAll(_ context.Context, aba string) ([][]string, error) {
	return f.Rows(aba), nil
}

func (f *FakeStore) AppendRow(ctx context.Context, aba string, row []string) error {
	return f.AppendRows(ctx, aba, [][]string{row})
}

func (f *FakeStore) AppendRows(_ context.Context, aba string, rows [][]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range rows {
		f.abas[aba] = append(f.abas[aba], append([]string(nil), r...))
	}
	return nil
}

func (f *FakeStore) UpdateCell(_ context.Context, aba string, row, col int, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.setCell(aba, row, col, value)
}

func (f *FakeStore) UpdateRange(_ context.Context, aba, rangeSpec string, rows [][]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.applyRange(aba, rangeSpec, rows)
}

func (f *FakeStore) DeleteRow(_ context.Context, aba string, row int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	idx := row - 2 // linha 1 é o cabeçalho
	rows := f.abas[aba]
	if idx < 0 || idx >= len(rows) {
		return fmt.Errorf("linha %d fora do intervalo da aba %s", row, aba)
	}
	f.abas[aba] = append(rows[:idx], rows[idx+1:]...)
	return nil
}

func (f *FakeStore) BatchUpdate(_ context.Context, aba string, updates []RangeUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range updates {
		if err := f.applyRange(aba, u.Range, u.Values); err != nil {
			return err
		}
	}
	return nil
}

// applyRange grava a grade de valores a partir do canto superior-esquerdo do
// intervalo. Chamador deve segurar o mutex.
func (f *FakeStore) applyRange(aba, rangeSpec string, rows [][]string) error {
	col, row, _, _, err := ParseRange(rangeSpec)
	if err != nil {
		return err
	}
	for i, valores := range rows {
		for j, v := range valores {
			if err := f.setCell(aba, row+i, col+j, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// setCell grava uma célula, estendendo a linha se necessário. Chamador deve
// segurar o mutex.
func (f *FakeStore) setCell(aba string, row, col int, value string) error {
	idx := row - 2
	rows := f.abas[aba]
	if idx < 0 || idx >= len(rows) {
		return fmt.Errorf("linha %d fora do intervalo da aba %s", row, aba)
	}
	for len(rows[idx]) < col {
		rows[idx] = append(rows[idx], "")
	}
	rows[idx][col-1] = value
	f.abas[aba] = rows
	return nil
}
