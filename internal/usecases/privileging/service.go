package privileging

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	platformdomain "github.com/wendyapp/admin-console-api/infrastructure/integrator/platform/domain"
	"github.com/wendyapp/admin-console-api/infrastructure/integrator/platform/platformclient"
	"github.com/wendyapp/admin-console-api/internal/domain"
	"github.com/wendyapp/admin-console-api/pkg/utils"
)

var (
	// ErrActionCancelled indica prompt de motivo cancelado; a ação é
	// abortada sem requisições. Motivo vazio é aceito neste fluxo.
	ErrActionCancelled = errors.New("ação cancelada pelo operador")

	// ErrEmptySelection indica lote disparado sem lojas selecionadas.
	ErrEmptySelection = errors.New("nenhuma loja selecionada")

	// ErrInvalidAction indica ação de lote fora de grant/revoke.
	ErrInvalidAction = errors.New("ação de lote inválida")
)

// Filter restringe a listagem por situação de privilégio.
type Filter string

const (
	FilterAll           Filter = "all"
	FilterPrivileged    Filter = "privileged"
	FilterNonPrivileged Filter = "non_privileged"
)

const (
	BatchActionGrant  = "grant"
	BatchActionRevoke = "revoke"
)

// View é a listagem devolvida aos handlers: as lojas candidatas já filtradas
// mais os contadores. A lista de privilegiadas alimenta apenas os contadores;
// lojas presentes só nela nunca aparecem na listagem.
type View struct {
	Stores             []domain.CandidateStore `json:"stores"`
	Total              int                     `json:"total"`
	PrivilegedCount    int                     `json:"privileged_count"`
	NonPrivilegedCount int                     `json:"non_privileged_count"`
	SelectedIDs        []string                `json:"selected_ids"`
}

// Privileger gerencia o privilégio de destaque das lojas: listagem de
// candidatas, alternância individual, seleção e operações em lote.
type Privileger interface {
	LoadStores(ctx context.Context, sess domain.Session)
	Overview(search string, filter Filter) View
	TogglePrivilege(ctx context.Context, sess domain.Session, storeID string, currentStatus bool, reason *string) (string, error)
	ToggleSelection(storeID string)
	SelectAllFiltered(search string, filter Filter)
	ClearSelection()
	ApplyBatch(ctx context.Context, sess domain.Session, action string, reason *string) (*platformdomain.BatchPrivilegeResult, error)
}

type PrivilegingService struct {
	client platformclient.Client

	mu         sync.RWMutex
	candidates []domain.CandidateStore
	privileged []domain.CandidateStore
	selection  map[string]struct{}
}

func NewPrivilegingService(client platformclient.Client) *PrivilegingService {
	return &PrivilegingService{
		client:    client,
		selection: make(map[string]struct{}),
	}
}

// LoadStores busca candidatas e privilegiadas. As duas buscas são
// independentes: falha em uma registra o erro e mantém o último valor
// conhecido da fatia correspondente.
func (s *PrivilegingService) LoadStores(ctx context.Context, sess domain.Session) {
	candidates, err := s.client.GetPrivilegeCandidates(ctx, sess)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lojas candidatas a privilégio")
	} else {
		s.mu.Lock()
		s.candidates = candidates
		s.mu.Unlock()
	}

	privileged, err := s.client.GetPrivilegedStores(ctx, sess)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lojas privilegiadas")
	} else {
		s.mu.Lock()
		s.privileged = privileged
		s.mu.Unlock()
	}
}

// Overview devolve a listagem de candidatas com busca e filtro aplicados. Os
// contadores sempre refletem o conjunto completo, não o recorte filtrado: o
// total é o tamanho da lista de candidatas e o de privilegiadas vem do tamanho
// da lista de privilegiadas.
func (s *PrivilegingService) Overview(search string, filter Filter) View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	selected := make([]string, 0, len(s.selection))
	for id := range s.selection {
		selected = append(selected, id)
	}

	return View{
		Stores:             filterStores(s.candidates, search, filter),
		Total:              len(s.candidates),
		PrivilegedCount:    len(s.privileged),
		NonPrivilegedCount: len(s.candidates) - len(s.privileged),
		SelectedIDs:        selected,
	}
}

// TogglePrivilege inverte o privilégio da loja. Motivo nulo aborta sem
// requisição; vazio é aceito. Em sucesso as listas são recarregadas por
// inteiro e a mensagem do servidor é devolvida.
func (s *PrivilegingService) TogglePrivilege(ctx context.Context, sess domain.Session, storeID string, currentStatus bool, reason *string) (string, error) {
	if reason == nil {
		return "", ErrActionCancelled
	}

	auditID, _ := utils.GenerateAuditID()

	log := logrus.WithFields(logrus.Fields{
		"audit_id":   auditID,
		"store_id":   storeID,
		"privileged": !currentStatus,
	})

	message, err := s.client.SetStorePrivilege(ctx, sess, storeID, !currentStatus, *reason)
	if err != nil {
		log.WithError(err).Error("Erro ao alterar privilégio da loja")
		return "", err
	}

	log.Info("Privilégio da loja alterado")

	s.LoadStores(ctx, sess)

	return message, nil
}

// ToggleSelection alterna a presença da loja no conjunto de seleção.
func (s *PrivilegingService) ToggleSelection(storeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.selection[storeID]; ok {
		delete(s.selection, storeID)
		return
	}
	s.selection[storeID] = struct{}{}
}

// SelectAllFiltered seleciona todas as lojas visíveis no recorte atual. Se
// todas já estão selecionadas, a seleção é limpa.
func (s *PrivilegingService) SelectAllFiltered(search string, filter Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := filterStores(s.candidates, search, filter)

	if len(s.selection) == len(filtered) && len(filtered) > 0 {
		s.selection = make(map[string]struct{})
		return
	}

	s.selection = make(map[string]struct{}, len(filtered))
	for _, store := range filtered {
		s.selection[store.ID] = struct{}{}
	}
}

func (s *PrivilegingService) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = make(map[string]struct{})
}

// ApplyBatch aplica grant ou revoke sobre a seleção atual. Em sucesso a
// seleção é limpa e as listas recarregadas; o resultado informa quantas lojas
// foram processadas e quantas falharam no lado da plataforma.
func (s *PrivilegingService) ApplyBatch(ctx context.Context, sess domain.Session, action string, reason *string) (*platformdomain.BatchPrivilegeResult, error) {
	s.mu.RLock()
	storeIDs := make([]string, 0, len(s.selection))
	for id := range s.selection {
		storeIDs = append(storeIDs, id)
	}
	s.mu.RUnlock()

	// Seleção vazia é apontada antes de qualquer outra validação
	if len(storeIDs) == 0 {
		return nil, ErrEmptySelection
	}

	if action != BatchActionGrant && action != BatchActionRevoke {
		return nil, ErrInvalidAction
	}

	if reason == nil {
		return nil, ErrActionCancelled
	}

	auditID, _ := utils.GenerateAuditID()

	log := logrus.WithFields(logrus.Fields{
		"audit_id": auditID,
		"action":   action,
		"stores":   len(storeIDs),
	})

	result, err := s.client.BatchStorePrivilege(ctx, sess, storeIDs, action, *reason)
	if err != nil {
		log.WithError(err).Error("Erro ao aplicar privilégio em lote")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"total_processed": result.TotalProcessed,
		"total_errors":    result.TotalErrors,
	}).Info("Privilégio em lote aplicado")

	s.ClearSelection()
	s.LoadStores(ctx, sess)

	return result, nil
}

// filterStores aplica busca textual (nome da loja ou do responsável, sem
// diferenciar maiúsculas) e o filtro de situação.
func filterStores(stores []domain.CandidateStore, search string, filter Filter) []domain.CandidateStore {
	needle := strings.ToLower(search)

	filtered := make([]domain.CandidateStore, 0, len(stores))
	for _, store := range stores {
		if needle != "" &&
			!strings.Contains(strings.ToLower(store.Name), needle) &&
			!strings.Contains(strings.ToLower(store.UserName), needle) {
			continue
		}

		switch filter {
		case FilterPrivileged:
			if !store.IsPrivileged {
				continue
			}
		case FilterNonPrivileged:
			if store.IsPrivileged {
				continue
			}
		}

		filtered = append(filtered, store)
	}

	return filtered
}
