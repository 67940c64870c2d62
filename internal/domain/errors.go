package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado       = errors.New("registro não encontrado")
	ErrQuantidadeInvalida  = errors.New("quantidade inválida")
	ErrEstoqueInsuficiente = errors.New("estoque insuficiente")
	ErrCampoObrigatorio    = errors.New("campo obrigatório não preenchido")
	ErrKitIncompleto       = errors.New("todos os campos do kit devem ser preenchidos")
	ErrRotaInvalida        = errors.New("setor de origem não pode ser igual ao de destino")
	ErrCategoriaInvalida   = errors.New("categoria não consta na configuração")
	ErrSetorInvalido       = errors.New("setor não consta na configuração")
	ErrDataInvalida        = errors.New("formato de data inválido, use dd/mm/aaaa")
	ErrRelatorioVazio      = errors.New("nenhum registro encontrado para os filtros selecionados")
	ErrConfigInvalida      = errors.New("aba de configuração mal formatada ou vazia")
	ErrTipoInvalido        = errors.New("tipo de movimentação inválido")
)
