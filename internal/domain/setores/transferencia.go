// Package setores valida e monta transferências de ativos entre setores.
package setores

import (
	"fmt"
	"strings"

	"github.com/hexastock/hexastock-api/internal/domain"
	"github.com/hexastock/hexastock-api/internal/domain/entity"
)

// ComponenteKit é um dos três itens que compõem o tipo "Kit".
type ComponenteKit struct {
	Rotulo     string // "Monitor 1", "Monitor 2", "Desktop"
	Patrimonio string
	ServiceTag string
}

// Transferencia é o pedido de movimentação de um ativo entre setores.
//
// O Kit é modelado de forma estruturada (três componentes); o achatamento em
// texto com quebras de linha é detalhe do formato da planilha e acontece só
// em PatrimonioPlano/ServiceTagPlano.
type Transferencia struct {
	TipoEquipamento string
	Patrimonio      string // itens normais
	ServiceTag      string
	Kit             [3]ComponenteKit // somente para TipoEquipKit
	SetorOrigem     string
	SetorDestino    string
	Responsavel     string
	Observacao      string
	Chamado         string
	Solicitante     string
}

// rotulosKit na ordem fixa do formulário original.
var rotulosKit = [3]string{"Monitor 1", "Monitor 2", "Desktop"}

// NovoKit monta os três componentes com os rótulos canônicos.
func NovoKit(p1, s1, p2, s2, p3, s3 string) [3]ComponenteKit {
	return [3]ComponenteKit{
		{Rotulo: rotulosKit[0], Patrimonio: p1, ServiceTag: s1},
		{Rotulo: rotulosKit[1], Patrimonio: p2, ServiceTag: s2},
		{Rotulo: rotulosKit[2], Patrimonio: p3, ServiceTag: s3},
	}
}

// Validar aplica as regras de negócio da transferência, fail-fast.
func (t Transferencia) Validar() error {
	obrigatorios := []struct{ nome, valor string }{
		{"tipo de equipamento", t.TipoEquipamento},
		{"setor de origem", t.SetorOrigem},
		{"setor de destino", t.SetorDestino},
		{"responsável", t.Responsavel},
		{"chamado", t.Chamado},
		{"solicitante", t.Solicitante},
	}
	for _, campo := range obrigatorios {
		if strings.TrimSpace(campo.valor) == "" {
			return fmt.Errorf("%s: %w", campo.nome, domain.ErrCampoObrigatorio)
		}
	}

	if t.TipoEquipamento == entity.TipoEquipKit {
		// Os seis campos do kit são obrigatórios como grupo.
		for _, c := range t.Kit {
			if strings.TrimSpace(c.Patrimonio) == "" || strings.TrimSpace(c.ServiceTag) == "" {
				return domain.ErrKitIncompleto
			}
		}
	} else {
		if strings.TrimSpace(t.Patrimonio) == "" {
			return fmt.Errorf("patrimônio: %w", domain.ErrCampoObrigatorio)
		}
		if exigeServiceTag(t.TipoEquipamento) && strings.TrimSpace(t.ServiceTag) == "" {
			return fmt.Errorf("servicetag: %w", domain.ErrCampoObrigatorio)
		}
	}

	if t.SetorOrigem == t.SetorDestino {
		return domain.ErrRotaInvalida
	}
	return nil
}

// exigeServiceTag: monitores e desktops têm service tag; os demais não.
func exigeServiceTag(tipo string) bool {
	return tipo == entity.TipoEquipMonitor || tipo == entity.TipoEquipDesktop
}

// PatrimonioPlano devolve o campo patrimônio no formato gravado na planilha:
// o valor simples para itens normais, ou as três linhas rotuladas para o Kit.
func (t Transferencia) PatrimonioPlano() string {
	if t.TipoEquipamento != entity.TipoEquipKit {
		return t.Patrimonio
	}
	linhas := make([]string, 0, 3)
	for _, c := range t.Kit {
		linhas = append(linhas, fmt.Sprintf("%s: %s", c.Rotulo, c.Patrimonio))
	}
	return strings.Join(linhas, "\n")
}

// ServiceTagPlano idem para o campo servicetag.
func (t Transferencia) ServiceTagPlano() string {
	if t.TipoEquipamento != entity.TipoEquipKit {
		return t.ServiceTag
	}
	linhas := make([]string, 0, 3)
	for _, c := range t.Kit {
		linhas = append(linhas, fmt.Sprintf("%s: %s", c.Rotulo, c.ServiceTag))
	}
	return strings.Join(linhas, "\n")
}
