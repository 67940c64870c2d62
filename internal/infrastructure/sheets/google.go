package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"

	"github.com/hexastock/hexastock-api/pkg/config"
)

var _ Store = (*GoogleStore)(nil)

// GoogleStore implementa Store sobre a API v4 do Google Sheets, autenticando
// com uma service account. Falhas de credencial ou de acesso à planilha são
// detectadas na construção, para que a aplicação aborte cedo.
type GoogleStore struct {
	svc           *sheetsv4.Service
	spreadsheetID string
	sheetIDs      map[string]int64 // título da aba -> sheetId numérico
}

// NewGoogleStore conecta na planilha e resolve os IDs numéricos das abas
// (necessários para excluir linhas via DeleteDimension).
func NewGoogleStore(ctx context.Context, cfg config.SheetsConfig) (*GoogleStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuração da planilha: %w", err)
	}

	svc, err := sheetsv4.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(sheetsv4.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("autenticar no Google Sheets: %w", err)
	}

	meta, err := svc.Spreadsheets.Get(cfg.SpreadsheetID).
		Fields("sheets.properties(sheetId,title)").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("abrir planilha %s: %w", cfg.SpreadsheetID, err)
	}

	ids := make(map[string]int64, len(meta.Sheets))
	for _, s := range meta.Sheets {
		if s.Properties != nil {
			ids[s.Properties.Title] = s.Properties.SheetId
		}
	}
	for _, aba := range []string{cfg.AbaEquipamentos, cfg.AbaMovimentacoes, cfg.AbaSetores, cfg.AbaConfig} {
		if _, ok := ids[aba]; !ok {
			return nil, fmt.Errorf("aba %q não encontrada na planilha", aba)
		}
	}

	return &GoogleStore{svc: svc, spreadsheetID: cfg.SpreadsheetID, sheetIDs: ids}, nil
}

// ReadAll lê a aba inteira e devolve as linhas de dados (sem o cabeçalho).
// Aba vazia devolve slice vazio, sem erro.
func (g *GoogleStore) ReadAll(ctx context.Context, aba string) ([][]string, error) {
	resp, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, aba).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("ler aba %s: %w", aba, err)
	}
	if len(resp.Values) <= 1 {
		return nil, nil
	}
	rows := make([][]string, 0, len(resp.Values)-1)
	for _, raw := range resp.Values[1:] {
		row := make([]string, len(raw))
		for i, cell := range raw {
			row[i] = fmt.Sprint(cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// AppendRow acrescenta uma linha ao final da aba.
func (g *GoogleStore) AppendRow(ctx context.Context, aba string, row []string) error {
	return g.AppendRows(ctx, aba, [][]string{row})
}

// AppendRows acrescenta várias linhas em uma única chamada.
func (g *GoogleStore) AppendRows(ctx context.Context, aba string, rows [][]string) error {
	vr := &sheetsv4.ValueRange{Values: toInterfaces(rows)}
	_, err := g.svc.Spreadsheets.Values.Append(g.spreadsheetID, aba, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("acrescentar linhas na aba %s: %w", aba, err)
	}
	return nil
}

// UpdateCell grava uma célula (row e col em base 1, linha 1 = cabeçalho).
func (g *GoogleStore) UpdateCell(ctx context.Context, aba string, row, col int, value string) error {
	return g.UpdateRange(ctx, aba, Cell(col, row), [][]string{{value}})
}

// UpdateRange grava um intervalo A1 da aba.
func (g *GoogleStore) UpdateRange(ctx context.Context, aba, rangeSpec string, rows [][]string) error {
	vr := &sheetsv4.ValueRange{Values: toInterfaces(rows)}
	_, err := g.svc.Spreadsheets.Values.Update(g.spreadsheetID, aba+"!"+rangeSpec, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("atualizar %s!%s: %w", aba, rangeSpec, err)
	}
	return nil
}

// DeleteRow exclui uma linha da aba (base 1). A API de dimensão usa índices
// em base 0 com fim exclusivo.
func (g *GoogleStore) DeleteRow(ctx context.Context, aba string, row int) error {
	sheetID, ok := g.sheetIDs[aba]
	if !ok {
		return fmt.Errorf("aba %q não encontrada na planilha", aba)
	}
	req := &sheetsv4.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsv4.Request{{
			DeleteDimension: &sheetsv4.DeleteDimensionRequest{
				Range: &sheetsv4.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(row - 1),
					EndIndex:   int64(row),
				},
			},
		}},
	}
	_, err := g.svc.Spreadsheets.BatchUpdate(g.spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("excluir linha %d da aba %s: %w", row, aba, err)
	}
	return nil
}

// BatchUpdate grava vários intervalos em uma única chamada.
func (g *GoogleStore) BatchUpdate(ctx context.Context, aba string, updates []RangeUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	data := make([]*sheetsv4.ValueRange, 0, len(updates))
	for _, u := range updates {
		data = append(data, &sheetsv4.ValueRange{
			Range:  aba + "!" + u.Range,
			Values: toInterfaces(u.Values),
		})
	}
	req := &sheetsv4.BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data:             data,
	}
	_, err := g.svc.Spreadsheets.Values.BatchUpdate(g.spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("batch update na aba %s: %w", aba, err)
	}
	return nil
}

func toInterfaces(rows [][]string) [][]interface{} {
	out := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, c := range row {
			cells[j] = c
		}
		out[i] = cells
	}
	return out
}
