package repoargs

type RepositoryName string

const (
	MemberRepoName        RepositoryName = "member"
	CopurchasingRepoName  RepositoryName = "copurchasing"
	ParticipationRepoName RepositoryName = "participation"
)
