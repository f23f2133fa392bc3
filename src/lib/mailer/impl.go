package mailer

import (
	"fmt"
	"os"
	"rtm/src/lib"
	"rtm/src/models"
)

// SendReservationConfirmation mails a booking confirmation. Callers fire
// this in a goroutine; a delivery failure is logged upstream and never
// fails the booking itself.
func SendReservationConfirmation(res *models.Reservation, restaurant *models.Restaurant, to string) error {
	from := os.Getenv("MAIL_FROM")
	fromName := os.Getenv("MAIL_FROM_NAME")
	body := fmt.Sprintf(
		"Your reservation at %s is %s.\n\nDate: %s\nParty size: %d\n\nSee you soon!",
		restaurant.Name,
		res.Status,
		res.ReservationTime.Format("Monday, January 2, 2006 at 15:04"),
		res.NumberOfGuests,
	)
	return lib.SendMail(&lib.SendMailInput{
		From:     from,
		FromName: fromName,
		To:       []string{to},
		Subject:  fmt.Sprintf("Reservation confirmation - %s", restaurant.Name),
		Body:     body,
	})
}
