package approving

import "errors"

var (
	// ErrReasonRequired indica rejeição ou exclusão sem motivo preenchido.
	ErrReasonRequired = errors.New("motivo é obrigatório para esta ação")

	// ErrActionCancelled indica que o operador abortou a ação antes de
	// informar o motivo. Nenhuma requisição é feita à plataforma.
	ErrActionCancelled = errors.New("ação cancelada pelo operador")

	// ErrConfirmationRequired indica exclusão sem a confirmação explícita.
	ErrConfirmationRequired = errors.New("exclusão exige confirmação explícita")

	// ErrUnknownKind indica um tipo de entidade fora de loja/entregador.
	ErrUnknownKind = errors.New("tipo de entidade desconhecido")
)
