package constvars

// Operation names, one per entry in the API route table.
const (
	OperationLogin                     = "login"
	OperationRegisterPatient           = "registerPatient"
	OperationRegisterProfessional      = "registerProfessional"
	OperationGetActivities             = "getActivities"
	OperationGetCategories             = "getCategories"
	OperationSearchProfessionals       = "searchProfessionals"
	OperationGetProfessionalDetails    = "getProfessionalDetails"
	OperationGetProfessionalActivities = "getProfessionalActivities"
	OperationGetPendingProfessionals   = "getPendingProfessionals"
	OperationApproveProfessional       = "approveProfessional"
	OperationRejectProfessional        = "rejectProfessional"
	OperationCreateCategory            = "createCategory"
	OperationUpdateCategory            = "updateCategory"
	OperationDeleteCategory            = "deleteCategory"
	OperationListActivities            = "listActivities"
	OperationCreateActivity            = "createActivity"
	OperationUpdateActivity            = "updateActivity"
	OperationDeleteActivity            = "deleteActivity"
	OperationGetDiploma                = "getDiploma"
	OperationGetPatientProfile         = "getPatientProfile"
	OperationUpdatePatientProfile      = "updatePatientProfile"
	OperationGetProfessionalProfile    = "getProfessionalProfile"
	OperationUpdateProfessionalProfile = "updateProfessionalProfile"
	OperationUpdateUserProfile         = "updateUserProfile"
	OperationCreateBooking             = "createBooking"
	OperationGetUserBookings           = "getUserBookings"
	OperationProcessPayment            = "processPayment"
	OperationUpdateBookingStatus       = "updateBookingStatus"
	OperationCreateReview              = "createReview"
	OperationGetProfessionalReviews    = "getProfessionalReviews"
)

const (
	FormFieldDiploma         = "diploma"
	FormFieldActivities      = "activities[]"
	FormFieldDescriptions    = "descriptions[]"
	FormFieldExperienceYears = "experience_years[]"
	FormFieldPrices          = "prices[]"
)
