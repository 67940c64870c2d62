package setores_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexastock/hexastock-api/internal/application/dto"
	"github.com/hexastock/hexastock-api/internal/application/projecao"
	appsetores "github.com/hexastock/hexastock-api/internal/application/setores"
	"github.com/hexastock/hexastock-api/internal/domain"
	"github.com/hexastock/hexastock-api/internal/domain/entity"
	"github.com/hexastock/hexastock-api/internal/infrastructure/sheets"
	"github.com/hexastock/hexastock-api/pkg/logger"
)

var abasTeste = sheets.Abas{
	Equipamentos:  "equipamentos",
	Movimentacoes: "movimentacoes",
	Setores:       "movimentacoes_setores",
	Config:        "config",
}

var paramsTeste = entity.Parametros{
	Categorias:          []string{"Periféricos"},
	Setores:             []string{"Financeiro", "RH", "TI"},
	EstoqueMinimoPadrao: 2,
}

func novoUseCase(t *testing.T) (*appsetores.UseCase, *sheets.FakeStore) {
	t.Helper()
	store := sheets.NewFakeStore()
	loader := projecao.NewLoader(store, abasTeste)
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return appsetores.NewUseCase(store, loader, abasTeste, paramsTeste, log), store
}

func requestValida() dto.TransferenciaRequest {
	return dto.TransferenciaRequest{
		TipoEquipamento: entity.TipoEquipMonitor,
		Patrimonio:      "PAT-1",
		ServiceTag:      "ST-1",
		SetorOrigem:     "TI",
		SetorDestino:    "RH",
		Responsavel:     "Ana",
		Chamado:         "INC-1",
		Solicitante:     "Bruno",
	}
}

func TestRegistrarTransferencia_GravaPendenteComProximoID(t *testing.T) {
	uc, store := novoUseCase(t)
	store.Seed(abasTeste.Setores, [][]string{
		{"4", "01-01-2025 08:00:00", "Ana", "WebCam", "P", "", "TI", "RH", "", "INC", "B", "Regularizado"},
	})

	m, err := uc.RegistrarTransferencia(context.Background(), requestValida())
	require.NoError(t, err)
	assert.Equal(t, 5, m.ID)
	assert.Equal(t, entity.RegularizacaoPendente, m.StatusRegularizacao)

	rows := store.Rows(abasTeste.Setores)
	require.Len(t, rows, 2)
	assert.Equal(t, "Pendente", rows[1][11], "o status nasce Pendente na coluna L")
}

func TestRegistrarTransferencia_KitAchatadoNaPlanilha(t *testing.T) {
	uc, store := novoUseCase(t)

	req := requestValida()
	req.TipoEquipamento = entity.TipoEquipKit
	req.KitPatrimonioMonitor1, req.KitServiceTagMonitor1 = "P1", "S1"
	req.KitPatrimonioMonitor2, req.KitServiceTagMonitor2 = "P2", "S2"
	req.KitPatrimonioDesktop, req.KitServiceTagDesktop = "P3", "S3"

	m, err := uc.RegistrarTransferencia(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Monitor 1: P1\nMonitor 2: P2\nDesktop: P3", m.Patrimonio)

	rows := store.Rows(abasTeste.Setores)
	assert.Equal(t, "Monitor 1: S1\nMonitor 2: S2\nDesktop: S3", rows[0][5])
}

func TestRegistrarTransferencia_KitIncompletoFalha(t *testing.T) {
	uc, _ := novoUseCase(t)

	req := requestValida()
	req.TipoEquipamento = entity.TipoEquipKit
	req.KitPatrimonioMonitor1 = "P1"

	_, err := uc.RegistrarTransferencia(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrKitIncompleto)
}

func TestRegistrarTransferencia_SetorForaDaListaFalha(t *testing.T) {
	uc, _ := novoUseCase(t)

	req := requestValida()
	req.SetorDestino = "Almoxarifado"
	_, err := uc.RegistrarTransferencia(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrSetorInvalido)
}

func TestRegistrarTransferencia_OrigemIgualDestinoFalha(t *testing.T) {
	uc, _ := novoUseCase(t)

	req := requestValida()
	req.SetorDestino = req.SetorOrigem
	_, err := uc.RegistrarTransferencia(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrRotaInvalida)
}

func TestRegularizar_ContaSoTransicoesReais(t *testing.T) {
	uc, store := novoUseCase(t)
	store.Seed(abasTeste.Setores, [][]string{
		{"1", "01-01-2025 08:00:00", "Ana", "WebCam", "P", "", "TI", "RH", "", "INC", "B", "Pendente"},
		{"2", "01-01-2025 08:00:00", "Ana", "Monitor", "P", "S", "TI", "RH", "", "INC", "B", "Regularizado"},
		{"3", "01-01-2025 08:00:00", "Ana", "Desktop", "P", "S", "TI", "RH", "", "INC", "B", ""},
	})

	// O 2 já está regularizado e o 99 não existe: só 1 e 3 transicionam.
	n, err := uc.Regularizar(context.Background(), []int{1, 2, 3, 99})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	rows := store.Rows(abasTeste.Setores)
	assert.Equal(t, "Regularizado", rows[0][11])
	assert.Equal(t, "Regularizado", rows[2][11], "status vazio conta como Pendente e transiciona")
}

func TestRegularizar_NenhumIDResolveFalha(t *testing.T) {
	uc, store := novoUseCase(t)
	store.Seed(abasTeste.Setores, [][]string{
		{"2", "01-01-2025 08:00:00", "Ana", "Monitor", "P", "S", "TI", "RH", "", "INC", "B", "Regularizado"},
	})

	_, err := uc.Regularizar(context.Background(), []int{98, 99})
	require.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestRegularizar_JaRegularizadoEhNoOp(t *testing.T) {
	uc, store := novoUseCase(t)
	store.Seed(abasTeste.Setores, [][]string{
		{"2", "01-01-2025 08:00:00", "Ana", "Monitor", "P", "S", "TI", "RH", "", "INC", "B", "Regularizado"},
	})

	n, err := uc.Regularizar(context.Background(), []int{2})
	require.NoError(t, err, "regularizar um ID já regularizado é no-op, não erro")
	assert.Equal(t, 0, n)
	assert.Equal(t, "Regularizado", store.Rows(abasTeste.Setores)[0][11])
}

func TestRegularizar_SemIDsFalha(t *testing.T) {
	uc, _ := novoUseCase(t)
	_, err := uc.Regularizar(context.Background(), nil)
	require.ErrorIs(t, err, domain.ErrCampoObrigatorio)
}
