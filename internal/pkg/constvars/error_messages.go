package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required":       "é obrigatório",
	"email":          "deve ser um e-mail válido",
	"min":            "deve ter no mínimo %s caracteres",
	"max":            "deve ter no máximo %s caracteres",
	"gte":            "deve ser maior ou igual a %s",
	"lte":            "deve ser menor ou igual a %s",
	"gt":             "deve ser maior que %s",
	"eqfield":        "deve ser igual a %s",
	"oneof":          "deve ser um dos valores: %s",
	"user_type":      "deve ser patient, professional ou admin",
	"payment_method": "deve ser credit_card, debit_card, pix ou bank_transfer",
	"booking_status": "deve ser pending, paid, confirmed, completed ou cancelled",
}

var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"gte":     true,
	"lte":     true,
	"gt":      true,
	"eqfield": true,
	"oneof":   true,
}

// Error messages for clients
const (
	ErrClientAuthRequired          = "Autenticação necessária"
	ErrClientInvalidCredentials    = "E-mail ou senha inválidos"
	ErrClientMalformedLogin        = "Requisição de login inválida"
	ErrClientLoginFailed           = "Falha na autenticação"
	ErrClientForbidden             = "Você não tem permissão para acessar este recurso"
	ErrClientEmailAlreadyInUse     = "Este e-mail já está em uso."
	ErrClientRegistrationFailed    = "Falha no cadastro"
	ErrClientPasswordsDoNotMatch   = "As senhas não conferem"
	ErrClientDiplomaRequired       = "Diploma é obrigatório"
	ErrClientDiplomaInvalidFormat  = "Formato de arquivo não permitido. Use PDF, PNG, JPG ou JPEG"
	ErrClientCannotProcessRequest  = "Não foi possível processar sua solicitação"
	ErrClientServerUnavailable     = "Não foi possível conectar ao servidor. Tente novamente mais tarde."
	ErrClientUnexpectedResponse    = "Resposta inesperada do servidor"
	ErrClientNotFound              = "Recurso não encontrado"
	ErrClientProfessionalNotFound  = "Profissional não encontrado"
	ErrClientProfileNotFound       = "Perfil não encontrado"
	ErrClientDiplomaNotFound       = "Diploma não encontrado"
	ErrClientProfessionalOnly      = "Operação disponível apenas para profissionais"
	ErrClientUnknownUserType       = "Tipo de usuário desconhecido"
	ErrClientDiplomaArchiveMissing = "Arquivamento de diplomas não configurado"
)

// Fallback messages per operation, used when the server sends no message
const (
	FallbackLogin                     = ErrClientLoginFailed
	FallbackRegisterPatient           = "Falha no cadastro de paciente"
	FallbackRegisterProfessional      = "Falha no cadastro de profissional"
	FallbackGetActivities             = "Falha ao buscar atividades"
	FallbackGetCategories             = "Falha ao buscar categorias"
	FallbackSearchProfessionals       = "Falha ao buscar profissionais"
	FallbackGetProfessionalDetails    = "Falha ao buscar detalhes do profissional"
	FallbackGetProfessionalActivities = "Falha ao buscar atividades do profissional"
	FallbackGetPendingProfessionals   = "Falha ao buscar profissionais pendentes"
	FallbackApproveProfessional       = "Falha ao aprovar profissional"
	FallbackRejectProfessional        = "Falha ao rejeitar profissional"
	FallbackCreateCategory            = "Falha ao criar categoria"
	FallbackUpdateCategory            = "Falha ao atualizar categoria"
	FallbackDeleteCategory            = "Falha ao excluir categoria"
	FallbackListActivities            = "Falha ao listar atividades"
	FallbackCreateActivity            = "Falha ao criar atividade"
	FallbackUpdateActivity            = "Falha ao atualizar atividade"
	FallbackDeleteActivity            = "Falha ao excluir atividade"
	FallbackGetDiploma                = "Falha ao buscar diploma"
	FallbackGetProfile                = "Falha ao carregar perfil"
	FallbackUpdateProfile             = "Falha ao atualizar perfil"
	FallbackCreateBooking             = "Erro ao criar reserva"
	FallbackGetUserBookings           = "Falha ao buscar reservas"
	FallbackProcessPayment            = "Erro ao processar pagamento"
	FallbackUpdateBookingStatus       = "Falha ao atualizar status da reserva"
	FallbackCreateReview              = "Erro ao enviar avaliação"
	FallbackGetProfessionalReviews    = "Erro ao carregar avaliações"
)

// Error messages for developers
const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevValidationFailed          = "validation failed"
	ErrDevCannotMarshalJSON         = "cannot marshal JSON"
	ErrDevCannotParseJSON           = "cannot parse JSON"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request"
	ErrDevReadResponseBody          = "failed to read response body"
	ErrDevDecodeResponse            = "failed to decode %s response"
	ErrDevBuildMultipartBody        = "failed to build multipart body"
	ErrDevAuthTokenMissing          = "auth token missing from session"
	ErrDevAuthRejected              = "backend rejected %s with status %d"
	ErrDevBackendStatus             = "backend answered %s with status %d"
	ErrDevInvalidUserRecord         = "invalid user record"
	ErrDevUnknownUserType           = "unknown user type %q"
	ErrDevUnknownOperation          = "unknown operation %q"
	ErrDevMissingPathParam          = "missing path parameter for %s"
	ErrDevSessionStore              = "failed to persist session"
	ErrDevRedisGetData              = "failed to get data from redis"
	ErrDevRedisSetData              = "failed to set data into redis"
	ErrDevRedisDeleteData           = "failed to delete data from redis"
	ErrDevFileStorageRead           = "failed to read session file %s"
	ErrDevFileStorageWrite          = "failed to write session file %s"
	ErrDevMinioFailedToCreateObject = "failed to create object on bucket %s"
	ErrDevMinioFailedToEnsureBucket = "failed to ensure bucket %s"
	ErrDevRabbitMQPublishMessage    = "failed to publish message to queue %s"
	ErrDevDiplomaArchiveMissing     = "diploma archive not configured"
	ErrDevNotAJWT                   = "token is not a JWT"
)

// A server message counts as a duplicate email only when it names the email
// field and carries one of the duplicate markers. Both are matched
// case-insensitively.
var EmailFieldMarkers = []string{
	"email",
	"e-mail",
}

var DuplicateEmailMarkers = []string{
	"já cadastrado",
	"já está em uso",
	"já existe",
	"already registered",
	"already exists",
	"already in use",
}
