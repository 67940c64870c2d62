package entity

// Parametros são os valores da aba 'config' da planilha, carregados uma vez
// por sessão e somente leitura em runtime (a manutenção é externa).
type Parametros struct {
	Categorias          []string // ordenadas alfabeticamente
	Setores             []string // ordenados alfabeticamente
	EstoqueMinimoPadrao int
}

// CategoriaValida confere se a categoria consta na lista configurada.
func (p Parametros) CategoriaValida(categoria string) bool {
	for _, c := range p.Categorias {
		if c == categoria {
			return true
		}
	}
	return false
}

// SetorValido confere se o setor consta na lista configurada.
func (p Parametros) SetorValido(setor string) bool {
	for _, s := range p.Setores {
		if s == setor {
			return true
		}
	}
	return false
}
