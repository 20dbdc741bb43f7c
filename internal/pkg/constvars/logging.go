package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingOperationKey      = "operation"
	LoggingMethodKey         = "method"
	LoggingPathKey           = "path"
	LoggingStatusCodeKey     = "status_code"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseLengthKey = "response_length"
	LoggingUserIDKey         = "user_id"
	LoggingUserTypeKey       = "user_type"
	LoggingBookingIDKey      = "booking_id"
	LoggingProfessionalIDKey = "professional_id"
	LoggingCategoryIDKey     = "category_id"
	LoggingActivityIDKey     = "activity_id"
	LoggingStorageKey        = "storage_key"
	LoggingEventTypeKey      = "event_type"
	LoggingBucketNameKey     = "bucket_name"
	LoggingObjectNameKey     = "object_name"
)
