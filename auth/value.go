package auth

var _ Provider = ValueAuth{}

// ValueAuth stores a bot token value.
type ValueAuth struct {
	simpleProvider
}

func NewValueAuth(token string) (ValueAuth, error) {
	token = normalise(token)
	if token == "" {
		return ValueAuth{}, ErrNoToken
	}
	return ValueAuth{simpleProvider{token: token}}, nil
}

func (ValueAuth) Type() Type {
	return TypeValue
}
