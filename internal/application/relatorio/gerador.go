// Package relatorio gera os relatórios HTML de estoque e de movimentações
// entre setores por substituição de placeholders em templates.
package relatorio

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/hexastock/hexastock-api/internal/application/projecao"
	"github.com/hexastock/hexastock-api/internal/domain"
	"github.com/hexastock/hexastock-api/internal/domain/entity"
	"github.com/hexastock/hexastock-api/internal/infrastructure/sheets"
)

// Placeholders reconhecidos nos templates.
const (
	phDataGeracao = "{{data_geracao}}"
	phTotalItens  = "{{total_itens}}"
	phConteudo    = "{{conteudo_relatorio}}"
	phTabela      = "{{tabela_movimentacoes}}"
)

// layoutGeracao é o formato do carimbo "gerado em" nos relatórios.
const layoutGeracao = "02/01/2006 15:04:05"

// templateEstoqueFallback é usado quando o template de estoque não existe no
// disco: o relatório de estoque nunca falha por falta de template. O de
// setores, ao contrário, exige o arquivo.
const templateEstoqueFallback = `<!DOCTYPE html><html lang="pt-br"><head><meta charset="UTF-8"><title>Relatório de Estoque</title>
<style>body{font-family:sans-serif;} h1{color:#007bff;} .header{border-bottom:1px solid #ccc;padding-bottom:10px;} table{border-collapse:collapse;width:100%;margin-top:15px;} th,td{border:1px solid #ddd;padding:8px;} th{background-color:#f2f2f2;}</style>
</head><body><div class="header"><h1>Relatório de Estoque</h1><p><strong>Gerado em:</strong> {{data_geracao}}</p><p><strong>Total de Tipos de Itens no Relatório:</strong> {{total_itens}}</p></div><hr>{{conteudo_relatorio}}</body></html>`

// Filtros aceitos.
const (
	FiltroDataTodos     = "todos"
	FiltroDataIntervalo = "intervalo"

	FiltroStatusTodos         = "todos"
	FiltroStatusPendentes     = "pendentes"
	FiltroStatusRegularizados = "regularizados"
)

// OpcoesEstoque parametriza o relatório de estoque. IDsVisiveis delimita os
// itens incluídos (a lista que o chamador está vendo); vazio inclui todos.
type OpcoesEstoque struct {
	IDsVisiveis      []int
	IncluirHistorico bool
	FiltroData       string // todos | intervalo
	DataInicio       string // dd/mm/aaaa, somente com FiltroDataIntervalo
	DataFim          string
}

// OpcoesSetores parametriza o relatório de movimentações entre setores.
// O filtro de status é aplicado antes do filtro de data.
type OpcoesSetores struct {
	FiltroStatus string // todos | pendentes | regularizados
	FiltroData   string
	DataInicio   string
	DataFim      string
}

// Gerador monta e grava os relatórios.
type Gerador struct {
	templateEstoque string // caminho do template de estoque
	templateSetores string
	dir             string // diretório de saída
}

// NewGerador constrói o gerador com os caminhos configurados.
func NewGerador(templateEstoque, templateSetores, dir string) *Gerador {
	return &Gerador{templateEstoque: templateEstoque, templateSetores: templateSetores, dir: dir}
}

// intervalo converte o filtro dd/mm/aaaa em limites inclusivos. O limite
// final é o fim do último dia (data + 1 dia - 1 segundo).
func intervalo(inicioStr, fimStr string) (inicio, fim time.Time, err error) {
	inicio, err = time.ParseInLocation(sheets.LayoutFiltro, strings.TrimSpace(inicioStr), time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%q: %w", inicioStr, domain.ErrDataInvalida)
	}
	fim, err = time.ParseInLocation(sheets.LayoutFiltro, strings.TrimSpace(fimStr), time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%q: %w", fimStr, domain.ErrDataInvalida)
	}
	fim = fim.AddDate(0, 0, 1).Add(-time.Second)
	return inicio, fim, nil
}

// dentro testa dt contra o intervalo inclusivo. Datas zero (linhas que não
// parsearam) nunca entram.
func dentro(dt, inicio, fim time.Time) bool {
	return !dt.IsZero() && !dt.Before(inicio) && !dt.After(fim)
}

func esc(s string) string { return html.EscapeString(s) }

// Estoque gera o HTML do relatório de estoque: uma seção por item, com o
// histórico de movimentações opcional ordenado do mais recente para o mais
// antigo.
func (g *Gerador) Estoque(snap *projecao.Snapshot, op OpcoesEstoque, agora time.Time) (string, error) {
	visiveis := make(map[int]bool, len(op.IDsVisiveis))
	for _, id := range op.IDsVisiveis {
		visiveis[id] = true
	}

	itens := make([]entity.Equipamento, 0, len(snap.Equipamentos))
	for _, e := range snap.Equipamentos {
		if len(visiveis) == 0 || visiveis[e.ID] {
			itens = append(itens, e)
		}
	}
	if len(itens) == 0 {
		return "", domain.ErrRelatorioVazio
	}

	var inicio, fim time.Time
	filtrar := op.IncluirHistorico && op.FiltroData == FiltroDataIntervalo
	if filtrar {
		var err error
		inicio, fim, err = intervalo(op.DataInicio, op.DataFim)
		if err != nil {
			return "", err
		}
	}

	tpl, err := os.ReadFile(g.templateEstoque)
	if err != nil {
		tpl = []byte(templateEstoqueFallback)
	}

	var b strings.Builder
	for _, item := range itens {
		b.WriteString("<div class='item-section'>")
		fmt.Fprintf(&b, "<h2>%s (ID: %d)</h2>", esc(item.Nome), item.ID)
		b.WriteString("<div class='item-details-grid'>")
		fmt.Fprintf(&b, "<p><strong>Categoria:</strong> %s</p>", esc(item.Categoria))
		fmt.Fprintf(&b, "<p><strong>Status:</strong> %s</p>", esc(item.Status))
		fmt.Fprintf(&b, "<p><strong>Quantidade Atual:</strong> %d</p>", item.Quantidade)
		fmt.Fprintf(&b, "<p><strong>Estoque Mínimo:</strong> %d</p>", item.EstoqueMinimo)
		fmt.Fprintf(&b, "<p><strong>Nº de Série/SKU:</strong> %s</p>", esc(item.NumeroSerie))
		fmt.Fprintf(&b, "<p><strong>Descrição:</strong> %s</p>", esc(item.Descricao))
		b.WriteString("</div>")

		if op.IncluirHistorico {
			g.historicoItem(&b, snap, item.ID, filtrar, inicio, fim)
		}
		b.WriteString("</div>")
	}

	out := strings.ReplaceAll(string(tpl), phDataGeracao, agora.Format(layoutGeracao))
	out = strings.ReplaceAll(out, phTotalItens, strconv.Itoa(len(itens)))
	out = strings.ReplaceAll(out, phConteudo, b.String())
	return out, nil
}

// historicoItem escreve a tabela de histórico de um item, se houver linhas
// após o filtro.
func (g *Gerador) historicoItem(b *strings.Builder, snap *projecao.Snapshot, id int, filtrar bool, inicio, fim time.Time) {
	movs := make([]entity.Movimentacao, 0)
	for _, m := range snap.Movimentacoes {
		if !m.Pertence(id) {
			continue
		}
		if filtrar && !dentro(m.DataDt, inicio, fim) {
			continue
		}
		movs = append(movs, m)
	}
	if len(movs) == 0 {
		return
	}
	sort.SliceStable(movs, func(i, j int) bool {
		a, z := movs[i].ID, movs[j].ID
		if a == nil {
			return false
		}
		if z == nil {
			return true
		}
		return *a > *z
	})

	b.WriteString("<h3>Histórico de Movimentações:</h3>")
	b.WriteString("<table><thead><tr><th>Data</th><th>Tipo</th><th>Qtd</th><th>Responsável</th><th>Solicitante</th><th>Destino/Origem</th><th>Chamado</th><th>Motivo/Laudo</th></tr></thead><tbody>")
	for _, m := range movs {
		b.WriteString("<tr>")
		fmt.Fprintf(b, "<td>%s</td>", esc(m.Data))
		fmt.Fprintf(b, "<td>%s</td>", esc(m.Tipo))
		fmt.Fprintf(b, "<td>%d</td>", m.Quantidade)
		fmt.Fprintf(b, "<td>%s</td>", esc(m.Responsavel))
		fmt.Fprintf(b, "<td>%s</td>", esc(m.Solicitante))
		fmt.Fprintf(b, "<td>%s</td>", esc(m.DestinoOrigem))
		fmt.Fprintf(b, "<td>%s</td>", esc(m.Chamado))
		fmt.Fprintf(b, "<td>%s</td>", esc(m.MotivoLaudo))
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
}

// Setores gera o HTML do relatório de movimentações entre setores como uma
// tabela única. O template é obrigatório: sem ele a geração falha.
func (g *Gerador) Setores(snap *projecao.Snapshot, op OpcoesSetores, agora time.Time) (string, error) {
	movs := make([]entity.MovimentacaoSetor, 0, len(snap.MovimentacoesSetores))
	for _, m := range snap.MovimentacoesSetores {
		switch op.FiltroStatus {
		case FiltroStatusPendentes:
			if m.StatusEfetivo() != entity.RegularizacaoPendente {
				continue
			}
		case FiltroStatusRegularizados:
			if m.StatusEfetivo() != entity.RegularizacaoRegularizado {
				continue
			}
		}
		movs = append(movs, m)
	}

	if op.FiltroData == FiltroDataIntervalo {
		inicio, fim, err := intervalo(op.DataInicio, op.DataFim)
		if err != nil {
			return "", err
		}
		filtradas := movs[:0]
		for _, m := range movs {
			if dentro(m.DataDt, inicio, fim) {
				filtradas = append(filtradas, m)
			}
		}
		movs = filtradas
	}
	if len(movs) == 0 {
		return "", domain.ErrRelatorioVazio
	}

	tpl, err := os.ReadFile(g.templateSetores)
	if err != nil {
		return "", fmt.Errorf("carregar template de setores: %w", err)
	}

	var b strings.Builder
	b.WriteString(`<table class="styled-table"><thead><tr>`)
	for _, th := range []string{"Data", "Equipamento", "Patrimônio", "ServiceTag", "Origem", "Destino", "Responsável", "Chamado", "Solicitante", "Status", "Observação"} {
		fmt.Fprintf(&b, "<th>%s</th>", th)
	}
	b.WriteString("</tr></thead><tbody>")
	for _, m := range movs {
		b.WriteString("<tr>")
		fmt.Fprintf(&b, "<td>%s</td>", esc(m.Data))
		fmt.Fprintf(&b, "<td>%s</td>", esc(m.TipoEquipamento))
		// Os três componentes do Kit vêm em linhas separadas na planilha.
		fmt.Fprintf(&b, "<td>%s</td>", multilinha(m.Patrimonio))
		fmt.Fprintf(&b, "<td>%s</td>", multilinha(m.ServiceTag))
		fmt.Fprintf(&b, "<td>%s</td>", esc(m.SetorOrigem))
		fmt.Fprintf(&b, "<td>%s</td>", esc(m.SetorDestino))
		fmt.Fprintf(&b, "<td>%s</td>", esc(m.Responsavel))
		fmt.Fprintf(&b, "<td>%s</td>", esc(m.Chamado))
		fmt.Fprintf(&b, "<td>%s</td>", esc(m.Solicitante))
		fmt.Fprintf(&b, "<td>%s</td>", esc(m.StatusEfetivo()))
		fmt.Fprintf(&b, "<td>%s</td>", esc(m.Observacao))
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")

	out := strings.ReplaceAll(string(tpl), phDataGeracao, agora.Format(layoutGeracao))
	out = strings.ReplaceAll(out, phTabela, b.String())
	return out, nil
}

// multilinha escapa o valor e converte quebras de linha em <br>.
func multilinha(s string) string {
	return strings.ReplaceAll(esc(s), "\n", "<br>")
}

// SalvarEstoque grava o relatório de estoque com nome datado e devolve o
// caminho do arquivo.
func (g *Gerador) SalvarEstoque(conteudo string, agora time.Time) (string, error) {
	nome := fmt.Sprintf("Relatorio_Estoque_%s.html", agora.Format("2006-01-02"))
	return g.salvar(nome, conteudo)
}

// SalvarSetores idem para o relatório de setores.
func (g *Gerador) SalvarSetores(conteudo string, agora time.Time) (string, error) {
	nome := fmt.Sprintf("Relatorio_Mov_Setores_%s.html", agora.Format("2006-01-02"))
	return g.salvar(nome, conteudo)
}

func (g *Gerador) salvar(nome, conteudo string) (string, error) {
	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return "", fmt.Errorf("criar diretório de relatórios: %w", err)
	}
	caminho := filepath.Join(g.dir, nome)
	if err := os.WriteFile(caminho, []byte(conteudo), 0o644); err != nil {
		return "", fmt.Errorf("gravar relatório: %w", err)
	}
	return caminho, nil
}
