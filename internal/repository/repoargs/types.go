package repoargs

type RepositoryName string

const (
	UserRepoName        RepositoryName = "user"
	BillRepoName        RepositoryName = "bill"
	ParticipantRepoName RepositoryName = "participant"
	PaymentRepoName     RepositoryName = "payment"
)

