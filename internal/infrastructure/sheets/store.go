// Package sheets é o adaptador do armazenamento tabular remoto (Google
// Sheets). As operações endereçam linhas e colunas em base 1, com a linha 1
// reservada para o cabeçalho; ReadAll devolve apenas as linhas de dados, de
// modo que a linha de dados i corresponde à linha i+2 da planilha.
package sheets

import (
	"context"
	"fmt"
	"strings"
)

// RangeUpdate é uma atualização de intervalo para BatchUpdate. Range é uma
// referência A1 sem o nome da aba (ex.: "L5", "E5:F5").
type RangeUpdate struct {
	Range  string
	Values [][]string
}

// Store abstrai a planilha remota. Exclusões em lote devem ser aplicadas em
// ordem decrescente de linha para não deslocar os índices restantes.
type Store interface {
	ReadAll(ctx context.Context, aba string) ([][]string, error)
	AppendRow(ctx context.Context, aba string, row []string) error
	AppendRows(ctx context.Context, aba string, rows [][]string) error
	UpdateCell(ctx context.Context, aba string, row, col int, value string) error
	UpdateRange(ctx context.Context, aba, rangeSpec string, rows [][]string) error
	DeleteRow(ctx context.Context, aba string, row int) error
	BatchUpdate(ctx context.Context, aba string, updates []RangeUpdate) error
}

// Abas agrupa os nomes das quatro abas usadas pela aplicação.
type Abas struct {
	Equipamentos  string
	Movimentacoes string
	Setores       string
	Config        string
}

// ColLetter converte um índice de coluna em base 1 para a letra A1
// (1 -> A, 26 -> Z, 27 -> AA).
func ColLetter(col int) string {
	var b strings.Builder
	for col > 0 {
		col--
		b.WriteByte(byte('A' + col%26))
		col /= 26
	}
	// As letras saem na ordem inversa.
	s := []byte(b.String())
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	return string(s)
}

// Cell monta a referência A1 de uma célula (col e row em base 1).
func Cell(col, row int) string {
	return fmt.Sprintf("%s%d", ColLetter(col), row)
}

// ParseCell decompõe uma referência A1 de célula ("E5") em coluna e linha
// base 1. Referências malformadas devolvem erro.
func ParseCell(ref string) (col, row int, err error) {
	i := 0
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		col = col*26 + int(ref[i]-'A'+1)
		i++
	}
	if i == 0 || i == len(ref) {
		return 0, 0, fmt.Errorf("referência de célula inválida: %q", ref)
	}
	for ; i < len(ref); i++ {
		if ref[i] < '0' || ref[i] > '9' {
			return 0, 0, fmt.Errorf("referência de célula inválida: %q", ref)
		}
		row = row*10 + int(ref[i]-'0')
	}
	if row == 0 {
		return 0, 0, fmt.Errorf("referência de célula inválida: %q", ref)
	}
	return col, row, nil
}

// ParseRange decompõe um intervalo A1 ("E5:F7" ou "L5") nos cantos
// superior-esquerdo e inferior-direito.
func ParseRange(ref string) (col1, row1, col2, row2 int, err error) {
	inicio, fim, achou := strings.Cut(ref, ":")
	col1, row1, err = ParseCell(inicio)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	if !achou {
		return col1, row1, col1, row1, nil
	}
	col2, row2, err = ParseCell(fim)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return col1, row1, col2, row2, nil
}
