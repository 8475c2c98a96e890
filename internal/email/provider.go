package email

// Provider sends transactional mail. Delivery is always best effort: a
// failed send is logged by the caller and never fails the request.
type Provider interface {
	Send(to, subject, htmlBody string) error
}
