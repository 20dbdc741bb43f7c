package exceptions

import (
	"fmt"
	"saude-connect/internal/pkg/constvars"
)

var (
	// Session
	ErrAuthRequired = func(err error) *CustomError {
		return BuildNewCustomError(err, KindAuthRequired, constvars.StatusUnauthorized, constvars.ErrClientAuthRequired, constvars.ErrDevAuthTokenMissing)
	}
	ErrSessionRejected = func(err error, operation, clientMessage string) *CustomError {
		return BuildNewCustomError(err, KindAuthRequired, constvars.StatusUnauthorized, clientMessage, fmt.Sprintf(constvars.ErrDevAuthRejected, operation, constvars.StatusUnauthorized))
	}
	ErrInvalidUserRecord = func(err error) *CustomError {
		return BuildNewCustomError(err, KindServer, constvars.StatusInternalServerError, constvars.ErrClientUnexpectedResponse, constvars.ErrDevInvalidUserRecord)
	}
	ErrSessionStore = func(err error) *CustomError {
		return BuildNewCustomError(err, KindServer, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevSessionStore)
	}

	// Auth
	ErrInvalidCredentials = func(err error, clientMessage string) *CustomError {
		customError := BuildNewCustomError(err, KindAuth, constvars.StatusUnauthorized, clientMessage, fmt.Sprintf(constvars.ErrDevAuthRejected, "login", constvars.StatusUnauthorized))
		customError.Reason = ReasonInvalidCredentials
		return customError
	}
	ErrMalformedLogin = func(err error, clientMessage string) *CustomError {
		customError := BuildNewCustomError(err, KindAuth, constvars.StatusBadRequest, clientMessage, constvars.ErrDevInvalidInput)
		customError.Reason = ReasonMalformedRequest
		return customError
	}
	ErrLoginServer = func(err error, statusCode int, clientMessage string) *CustomError {
		customError := BuildNewCustomError(err, KindAuth, statusCode, clientMessage, fmt.Sprintf(constvars.ErrDevBackendStatus, "login", statusCode))
		customError.Reason = ReasonServerError
		return customError
	}
	ErrForbidden = func(err error, operation, clientMessage string) *CustomError {
		customError := BuildNewCustomError(err, KindAuth, constvars.StatusForbidden, clientMessage, fmt.Sprintf(constvars.ErrDevAuthRejected, operation, constvars.StatusForbidden))
		customError.Reason = ReasonForbidden
		return customError
	}

	// Validation
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrClientValidation = func(clientMessage string) *CustomError {
		return BuildNewCustomError(nil, KindValidation, constvars.StatusBadRequest, clientMessage, constvars.ErrDevValidationFailed)
	}
	ErrBackendValidation = func(err error, operation string, statusCode int, clientMessage string) *CustomError {
		return BuildNewCustomError(err, KindValidation, statusCode, clientMessage, fmt.Sprintf(constvars.ErrDevBackendStatus, operation, statusCode))
	}
	ErrEmailAlreadyInUse = func(err error, statusCode int) *CustomError {
		return BuildNewCustomError(err, KindValidation, statusCode, constvars.ErrClientEmailAlreadyInUse, constvars.ErrDevValidationFailed)
	}

	// Lookup
	ErrNotFound = func(err error, operation, clientMessage string) *CustomError {
		return BuildNewCustomError(err, KindNotFound, constvars.StatusNotFound, clientMessage, fmt.Sprintf(constvars.ErrDevBackendStatus, operation, constvars.StatusNotFound))
	}
	ErrSearch = func(err error, operation string, statusCode int, clientMessage string) *CustomError {
		return BuildNewCustomError(err, KindSearch, statusCode, clientMessage, fmt.Sprintf(constvars.ErrDevBackendStatus, operation, statusCode))
	}

	// Server
	ErrBackendServer = func(err error, operation string, statusCode int, clientMessage string) *CustomError {
		return BuildNewCustomError(err, KindServer, statusCode, clientMessage, fmt.Sprintf(constvars.ErrDevBackendStatus, operation, statusCode))
	}
	ErrUnknownUserType = func(userType string) *CustomError {
		return BuildNewCustomError(nil, KindServer, constvars.StatusInternalServerError, constvars.ErrClientUnknownUserType, fmt.Sprintf(constvars.ErrDevUnknownUserType, userType))
	}
	ErrUnknownOperation = func(operation string) *CustomError {
		return BuildNewCustomError(nil, KindServer, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevUnknownOperation, operation))
	}
	ErrMissingPathParam = func(operation string) *CustomError {
		return BuildNewCustomError(nil, KindServer, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevMissingPathParam, operation))
	}

	// Encoding
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindServer, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindServer, constvars.StatusInternalServerError, constvars.ErrClientUnexpectedResponse, constvars.ErrDevCannotParseJSON)
	}
	ErrBuildMultipartBody = func(err error) *CustomError {
		return BuildNewCustomError(err, KindServer, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevBuildMultipartBody)
	}
	ErrDecodeResponse = func(err error, operation string) *CustomError {
		return BuildNewCustomError(err, KindServer, constvars.StatusInternalServerError, constvars.ErrClientUnexpectedResponse, fmt.Sprintf(constvars.ErrDevDecodeResponse, operation))
	}

	// HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindServer, 0, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindServer, 0, constvars.ErrClientServerUnavailable, constvars.ErrDevSendHTTPRequest)
	}
	ErrReadResponseBody = func(err error) *CustomError {
		return BuildNewCustomError(err, KindServer, 0, constvars.ErrClientUnexpectedResponse, constvars.ErrDevReadResponseBody)
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, KindServer, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, KindServer, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, KindServer, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevRedisDeleteData)
	}

	// File storage
	ErrFileStorageRead = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, KindServer, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevFileStorageRead, path))
	}
	ErrFileStorageWrite = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, KindServer, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevFileStorageWrite, path))
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, KindServer, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}
	ErrMinioEnsureBucket = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, KindServer, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevMinioFailedToEnsureBucket, bucketName))
	}
	ErrDiplomaArchiveMissing = func() *CustomError {
		return BuildNewCustomError(nil, KindServer, constvars.StatusInternalServerError, constvars.ErrClientDiplomaArchiveMissing, constvars.ErrDevDiplomaArchiveMissing)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, KindServer, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName))
	}

	// Token
	ErrNotAJWT = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevNotAJWT)
	}
)
