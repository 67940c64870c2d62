package setores_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexastock/hexastock-api/internal/domain"
	"github.com/hexastock/hexastock-api/internal/domain/entity"
	"github.com/hexastock/hexastock-api/internal/domain/setores"
)

func transferenciaValida() setores.Transferencia {
	return setores.Transferencia{
		TipoEquipamento: entity.TipoEquipMonitor,
		Patrimonio:      "PAT-100",
		ServiceTag:      "ST-100",
		SetorOrigem:     "TI",
		SetorDestino:    "Financeiro",
		Responsavel:     "Ana",
		Chamado:         "INC-1",
		Solicitante:     "Bruno",
	}
}

func TestValidar_TransferenciaValida(t *testing.T) {
	require.NoError(t, transferenciaValida().Validar())
}

func TestValidar_CamposObrigatorios(t *testing.T) {
	casos := []struct {
		nome  string
		mudar func(*setores.Transferencia)
	}{
		{"tipo", func(tr *setores.Transferencia) { tr.TipoEquipamento = "" }},
		{"origem", func(tr *setores.Transferencia) { tr.SetorOrigem = " " }},
		{"destino", func(tr *setores.Transferencia) { tr.SetorDestino = "" }},
		{"responsavel", func(tr *setores.Transferencia) { tr.Responsavel = "" }},
		{"chamado", func(tr *setores.Transferencia) { tr.Chamado = "" }},
		{"solicitante", func(tr *setores.Transferencia) { tr.Solicitante = "" }},
		{"patrimonio", func(tr *setores.Transferencia) { tr.Patrimonio = "" }},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			tr := transferenciaValida()
			c.mudar(&tr)
			require.ErrorIs(t, tr.Validar(), domain.ErrCampoObrigatorio)
		})
	}
}

func TestValidar_OrigemIgualDestinoSempreRejeitada(t *testing.T) {
	tr := transferenciaValida()
	tr.SetorDestino = tr.SetorOrigem
	require.ErrorIs(t, tr.Validar(), domain.ErrRotaInvalida)
}

func TestValidar_ServiceTagObrigatoriaSoParaMonitorEDesktop(t *testing.T) {
	tr := transferenciaValida()
	tr.TipoEquipamento = entity.TipoEquipWebCam
	tr.ServiceTag = ""
	assert.NoError(t, tr.Validar(), "webcam não exige servicetag")

	tr.TipoEquipamento = entity.TipoEquipDesktop
	require.ErrorIs(t, tr.Validar(), domain.ErrCampoObrigatorio)
}

func TestValidar_KitExigeOsSeisCampos(t *testing.T) {
	tr := transferenciaValida()
	tr.TipoEquipamento = entity.TipoEquipKit
	tr.Kit = setores.NovoKit("P1", "S1", "P2", "S2", "P3", "S3")
	require.NoError(t, tr.Validar())

	tr.Kit = setores.NovoKit("P1", "S1", "P2", "", "P3", "S3")
	require.ErrorIs(t, tr.Validar(), domain.ErrKitIncompleto,
		"qualquer campo do kit vazio invalida o grupo inteiro")
}

func TestPatrimonioPlano_KitAchatadoComRotulos(t *testing.T) {
	tr := transferenciaValida()
	tr.TipoEquipamento = entity.TipoEquipKit
	tr.Kit = setores.NovoKit("P1", "S1", "P2", "S2", "P3", "S3")

	assert.Equal(t, "Monitor 1: P1\nMonitor 2: P2\nDesktop: P3", tr.PatrimonioPlano())
	assert.Equal(t, "Monitor 1: S1\nMonitor 2: S2\nDesktop: S3", tr.ServiceTagPlano())
}

func TestPatrimonioPlano_ItemNormalSemRotulo(t *testing.T) {
	tr := transferenciaValida()
	assert.Equal(t, "PAT-100", tr.PatrimonioPlano())
	assert.Equal(t, "ST-100", tr.ServiceTagPlano())
}
