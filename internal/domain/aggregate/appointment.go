package aggregate

// AppointmentStatus enumerates appointment states
type AppointmentStatus string

const (
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is a booked clinic visit. Clinic and service names are
// denormalized snapshots taken at booking time; later catalog changes must
// not alter existing appointments.
type Appointment struct {
	ID          string            `json:"id"`
	ClinicID    string            `json:"clinicId"`
	ClinicName  string            `json:"clinicName"`
	ServiceID   string            `json:"serviceId"`
	ServiceName string            `json:"serviceName"`
	Date        string            `json:"date"`
	Time        string            `json:"time"`
	PetName     string            `json:"petName"`
	Status      AppointmentStatus `json:"status"`
}

// Cancel moves the appointment to cancelled. Cancelled is terminal: a second
// cancel is a no-op and reports false.
func (a *Appointment) Cancel() bool {
	if a.Status == AppointmentStatusCancelled {
		return false
	}
	a.Status = AppointmentStatusCancelled
	return true
}
