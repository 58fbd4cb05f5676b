package apiclient

import "context"

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var res struct {
		Access string `json:"access"`
	}
	err := c.do(ctx, "POST", "token/", nil, "", map[string]string{
		"username": username,
		"password": password,
	}, &res)
	if err != nil {
		return "", err
	}
	return res.Access, nil
}

// Register creates a collaborator account. The role is fixed server-side
// semantics; self-registration never produces an admin.
func (c *Client) Register(ctx context.Context, username, password string) error {
	return c.do(ctx, "POST", "register/", nil, "", map[string]string{
		"username":     username,
		"password":     password,
		"tipo_usuario": "colaborador",
	}, nil)
}
