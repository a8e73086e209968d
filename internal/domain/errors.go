package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound             = errors.New("recurso não encontrado")
	ErrUserNotFound         = errors.New("usuário não encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrUnauthorized         = errors.New("não autorizado")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrConfirmationRequired = errors.New("confirmação do usuário é necessária")
)
