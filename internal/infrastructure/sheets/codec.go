package sheets

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/hexastock/hexastock-api/internal/domain"
	"github.com/hexastock/hexastock-api/internal/domain/entity"
)

// Este arquivo concentra toda a conversão linha <-> entidade e as regras de
// tolerância a dados malformados, para que os fallbacks fiquem auditáveis em
// um único lugar:
//   - colunas numéricas de equipamento que não parseiam viram 1 (preserva a
//     suposição "pelo menos um" de linhas legadas, não 0);
//   - chaves de movimentação que não parseiam viram nil (a linha fica sem
//     join, mas não é descartada);
//   - datas fora do formato dd-mm-aaaa HH:MM:SS viram time zero e ordenam
//     por último.

// LayoutData é o formato de data/hora das planilhas; LayoutFiltro é o formato
// aceito nos filtros de relatório.
const (
	LayoutData   = "02-01-2006 15:04:05"
	LayoutFiltro = "02/01/2006"
)

// Colunas mutáveis pela reconciliação na aba de equipamentos (base 1).
const (
	ColEquipQuantidade = 5 // E
	ColEquipStatus     = 6 // F
)

// ColSetorStatus é a coluna de status de regularização na aba de setores.
const ColSetorStatus = 12 // L

func get(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func intOuUm(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 1
	}
	return n
}

func intOuNil(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}

func parseData(s string) time.Time {
	t, err := time.ParseInLocation(LayoutData, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ParseEquipamento converte uma linha da aba 'equipamentos'
// (id, nome, numero_serie, descricao, quantidade, status, data_cadastro,
// estoque_minimo, categoria).
func ParseEquipamento(row []string) entity.Equipamento {
	return entity.Equipamento{
		ID:            intOuUm(get(row, 0)),
		Nome:          get(row, 1),
		NumeroSerie:   get(row, 2),
		Descricao:     get(row, 3),
		Quantidade:    intOuUm(get(row, 4)),
		Status:        get(row, 5),
		DataCadastro:  get(row, 6),
		EstoqueMinimo: intOuUm(get(row, 7)),
		Categoria:     get(row, 8),
	}
}

// EquipamentoRow monta a linha na ordem exata das colunas da planilha.
func EquipamentoRow(e entity.Equipamento) []string {
	return []string{
		strconv.Itoa(e.ID),
		e.Nome,
		e.NumeroSerie,
		e.Descricao,
		strconv.Itoa(e.Quantidade),
		e.Status,
		e.DataCadastro,
		strconv.Itoa(e.EstoqueMinimo),
		e.Categoria,
	}
}

// ParseMovimentacao converte uma linha da aba 'movimentacoes'
// (id_movimentacao, id_equipamento_fk, tipo_movimentacao, quantidade_movida,
// destino_origem, solicitante, chamado, responsavel_movimentacao,
// data_movimentacao, motivo_laudo).
func ParseMovimentacao(row []string) entity.Movimentacao {
	data := get(row, 8)
	return entity.Movimentacao{
		ID:            intOuNil(get(row, 0)),
		IDEquipamento: intOuNil(get(row, 1)),
		Tipo:          get(row, 2),
		Quantidade:    intOuUm(get(row, 3)),
		DestinoOrigem: get(row, 4),
		Solicitante:   get(row, 5),
		Chamado:       get(row, 6),
		Responsavel:   get(row, 7),
		Data:          data,
		DataDt:        parseData(data),
		MotivoLaudo:   get(row, 9),
	}
}

// MovimentacaoRow monta a linha do histórico na ordem das colunas.
func MovimentacaoRow(m entity.Movimentacao) []string {
	id, fk := "", ""
	if m.ID != nil {
		id = strconv.Itoa(*m.ID)
	}
	if m.IDEquipamento != nil {
		fk = strconv.Itoa(*m.IDEquipamento)
	}
	return []string{
		id,
		fk,
		m.Tipo,
		strconv.Itoa(m.Quantidade),
		m.DestinoOrigem,
		m.Solicitante,
		m.Chamado,
		m.Responsavel,
		m.Data,
		m.MotivoLaudo,
	}
}

// ParseMovimentacaoSetor converte uma linha da aba 'movimentacoes_setores'
// (id, data_movimentacao, responsavel, tipo_equipamento, patrimonio,
// servicetag, setor_origem, setor_destino, observacao, chamado, solicitante,
// status_regularizacao).
func ParseMovimentacaoSetor(row []string) entity.MovimentacaoSetor {
	data := get(row, 1)
	return entity.MovimentacaoSetor{
		ID:                  intOuUm(get(row, 0)),
		Data:                data,
		DataDt:              parseData(data),
		Responsavel:         get(row, 2),
		TipoEquipamento:     get(row, 3),
		Patrimonio:          get(row, 4),
		ServiceTag:          get(row, 5),
		SetorOrigem:         get(row, 6),
		SetorDestino:        get(row, 7),
		Observacao:          get(row, 8),
		Chamado:             get(row, 9),
		Solicitante:         get(row, 10),
		StatusRegularizacao: get(row, 11),
	}
}

// MovimentacaoSetorRow monta a linha da transferência na ordem das colunas.
func MovimentacaoSetorRow(m entity.MovimentacaoSetor) []string {
	return []string{
		strconv.Itoa(m.ID),
		m.Data,
		m.Responsavel,
		m.TipoEquipamento,
		m.Patrimonio,
		m.ServiceTag,
		m.SetorOrigem,
		m.SetorDestino,
		m.Observacao,
		m.Chamado,
		m.Solicitante,
		m.StatusRegularizacao,
	}
}

// NextID varre a coluna de ID (primeira coluna) ignorando entradas não
// numéricas e devolve max+1, ou 1 se não houver nenhum ID. Deve ser chamado
// uma única vez por lote: para N linhas os IDs são base..base+N-1, evitando
// releituras de um store sem incremento atômico.
func NextID(rows [][]string) int {
	maior := 0
	for _, row := range rows {
		if n, err := strconv.Atoi(strings.TrimSpace(get(row, 0))); err == nil && n > maior {
			maior = n
		}
	}
	return maior + 1
}

// FindRowIndex localiza a linha da planilha (base 1) cujo ID na primeira
// coluna é o procurado. Deve ser refeito imediatamente antes de cada escrita
// destrutiva: edições externas deslocam linhas entre a leitura e a escrita.
func FindRowIndex(rows [][]string, id int) (int, bool) {
	for i, row := range rows {
		if n, err := strconv.Atoi(strings.TrimSpace(get(row, 0))); err == nil && n == id {
			return i + 2, true // +1 base 1, +1 cabeçalho
		}
	}
	return 0, false
}

// ParseParametros monta os parâmetros da aplicação a partir da aba 'config'
// (parametro, valor). A ausência do estoque mínimo padrão é fatal.
func ParseParametros(rows [][]string) (entity.Parametros, error) {
	var p entity.Parametros
	padrao := ""
	for _, row := range rows {
		valor := get(row, 1)
		switch get(row, 0) {
		case "categoria":
			p.Categorias = append(p.Categorias, valor)
		case "destino":
			p.Setores = append(p.Setores, valor)
		case "default_estoque_minimo":
			padrao = valor
		}
	}
	sort.Strings(p.Categorias)
	sort.Strings(p.Setores)

	n, err := strconv.Atoi(strings.TrimSpace(padrao))
	if err != nil || len(p.Categorias) == 0 || len(p.Setores) == 0 {
		return entity.Parametros{}, domain.ErrConfigInvalida
	}
	p.EstoqueMinimoPadrao = n
	return p, nil
}
