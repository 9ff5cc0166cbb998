package approving

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/wendyapp/admin-console-api/infrastructure/integrator/platform/platformclient"
	"github.com/wendyapp/admin-console-api/internal/domain"
	"github.com/wendyapp/admin-console-api/internal/usecases/overview"
	"github.com/wendyapp/admin-console-api/pkg/utils"
)

// Kind distingue as duas entidades sujeitas ao fluxo de aprovação.
type Kind string

const (
	KindStore     Kind = "store"
	KindDeliverer Kind = "deliverer"
)

// DeleteUserInput agrupa os campos da exclusão permanente. Reason nulo
// significa que o operador cancelou o prompt; Confirmed é a confirmação
// explícita exigida antes de qualquer chamada à plataforma.
type DeleteUserInput struct {
	UserID    string
	Kind      Kind
	Reason    *string
	Confirmed bool
}

// Approver executa o fluxo de aprovação: aprovar, rejeitar e excluir. Toda
// mutação só toca o estado local depois de resposta de sucesso da plataforma.
type Approver interface {
	Approve(ctx context.Context, sess domain.Session, kind Kind, entityID string) error
	Reject(ctx context.Context, sess domain.Session, kind Kind, entityID string, reason *string) error
	DeleteUser(ctx context.Context, sess domain.Session, input DeleteUserInput) error
}

type ApprovingService struct {
	client platformclient.Client
	state  *overview.StateStore
}

func NewApprovingService(client platformclient.Client, state *overview.StateStore) *ApprovingService {
	return &ApprovingService{
		client: client,
		state:  state,
	}
}

func (s *ApprovingService) Approve(ctx context.Context, sess domain.Session, kind Kind, entityID string) error {
	auditID, _ := utils.GenerateAuditID()

	log := logrus.WithFields(logrus.Fields{
		"audit_id":  auditID,
		"kind":      kind,
		"entity_id": entityID,
	})

	switch kind {
	case KindStore:
		if err := s.client.ApproveStore(ctx, sess, entityID); err != nil {
			log.WithError(err).Error("Erro ao aprovar loja")
			return err
		}
		s.state.MarkStoreApproved(entityID)

	case KindDeliverer:
		if err := s.client.ApproveDeliverer(ctx, sess, entityID); err != nil {
			log.WithError(err).Error("Erro ao aprovar entregador")
			return err
		}
		s.state.MarkDelivererApproved(entityID)

	default:
		return ErrUnknownKind
	}

	log.Info("Cadastro aprovado")

	return nil
}

// Reject recusa um cadastro pendente. O motivo é obrigatório: nulo significa
// prompt cancelado e vazio significa motivo não preenchido; nos dois casos a
// ação é abortada sem nenhuma requisição.
func (s *ApprovingService) Reject(ctx context.Context, sess domain.Session, kind Kind, entityID string, reason *string) error {
	if reason == nil {
		return ErrActionCancelled
	}
	if *reason == "" {
		return ErrReasonRequired
	}

	auditID, _ := utils.GenerateAuditID()

	log := logrus.WithFields(logrus.Fields{
		"audit_id":  auditID,
		"kind":      kind,
		"entity_id": entityID,
	})

	switch kind {
	case KindStore:
		if err := s.client.RejectStore(ctx, sess, entityID, *reason); err != nil {
			log.WithError(err).Error("Erro ao rejeitar loja")
			return err
		}
		s.state.MarkStoreRejected(entityID)

	case KindDeliverer:
		if err := s.client.RejectDeliverer(ctx, sess, entityID, *reason); err != nil {
			log.WithError(err).Error("Erro ao rejeitar entregador")
			return err
		}
		s.state.MarkDelivererRejected(entityID)

	default:
		return ErrUnknownKind
	}

	log.Info("Cadastro rejeitado")

	return nil
}

// DeleteUser remove permanentemente o usuário na plataforma e reflete a
// exclusão nas listas locais.
func (s *ApprovingService) DeleteUser(ctx context.Context, sess domain.Session, input DeleteUserInput) error {
	if input.Reason == nil {
		return ErrActionCancelled
	}
	if *input.Reason == "" {
		return ErrReasonRequired
	}
	if !input.Confirmed {
		return ErrConfirmationRequired
	}

	if input.Kind != KindStore && input.Kind != KindDeliverer {
		return ErrUnknownKind
	}

	auditID, _ := utils.GenerateAuditID()

	log := logrus.WithFields(logrus.Fields{
		"audit_id": auditID,
		"kind":     input.Kind,
		"user_id":  input.UserID,
	})

	if err := s.client.DeleteUser(ctx, sess, input.UserID, *input.Reason); err != nil {
		log.WithError(err).Error("Erro ao excluir usuário")
		return err
	}

	switch input.Kind {
	case KindStore:
		s.state.RemoveStoreUser(input.UserID)
	case KindDeliverer:
		s.state.RemoveDelivererUser(input.UserID)
	}

	log.Warn("Usuário excluído permanentemente")

	return nil
}
