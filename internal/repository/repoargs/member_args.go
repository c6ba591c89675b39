package repoargs

type CreateMember struct {
	Email    string
	Password string
	Nickname string
}
