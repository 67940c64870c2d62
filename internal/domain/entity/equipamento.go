package entity

// Status possíveis de um equipamento. O status é derivado: "Em Estoque" se a
// quantidade for maior que zero e o item não tiver sido descartado; itens
// descartados sempre ficam com quantidade zero.
const (
	StatusEmEstoque     = "Em Estoque"
	StatusForaDeEstoque = "Fora de Estoque"
	StatusDescartado    = "Descartado"
)

// Equipamento representa um item do estoque de TI.
// DataCadastro é imutável após a criação e é preservada tal como está na
// planilha (texto dd-mm-aaaa HH:MM:SS).
type Equipamento struct {
	ID            int
	Nome          string
	NumeroSerie   string // opcional
	Descricao     string
	Quantidade    int
	Status        string
	DataCadastro  string
	EstoqueMinimo int
	Categoria     string
}

// StatusPorQuantidade deriva o status de um item não descartado.
func StatusPorQuantidade(quantidade int) string {
	if quantidade > 0 {
		return StatusEmEstoque
	}
	return StatusForaDeEstoque
}

// EstoqueBaixo indica se o item está no ponto de reposição ou abaixo dele.
func (e Equipamento) EstoqueBaixo() bool {
	return e.Quantidade <= e.EstoqueMinimo
}
