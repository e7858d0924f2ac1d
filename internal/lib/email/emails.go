package email

import "context"

// SendWelcomeEmail greets a newly registered member.
func (c *Client) SendWelcomeEmail(ctx context.Context, to, name, discipline string) error {
	data := map[string]string{
		"MemberName": name,
		"Discipline": discipline,
	}

	return c.SendEmail(
		ctx,
		to,
		"Welcome to the Martial Arts Gym!",
		TemplateWelcome,
		data,
	)
}
