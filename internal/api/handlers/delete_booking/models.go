package delete_booking

// DeleteBookingResponse HTTP response model
// Удаление отсутствующей брони не ошибка, Deleted = false
type DeleteBookingResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}
