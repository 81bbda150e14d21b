package model

// ActorKind distinguishes human users from automated agents. The
// consensus engine refuses to let an automated approval satisfy the
// quorum on its own, so the distinction is an explicit tagged kind
// rather than a role-string membership test.
type ActorKind string

const (
	// ActorHuman is a person
	ActorHuman ActorKind = "human"
	// ActorAutomated is a service account, bot or pipeline agent
	ActorAutomated ActorKind = "automated"
)

// Actor is the identity performing an operation.
type Actor struct {
	ID    string    `json:"id" yaml:"id"`
	Kind  ActorKind `json:"kind" yaml:"kind"`
	Roles []string  `json:"roles,omitempty" yaml:"roles,omitempty"`
	_     struct{}
}

// automated role markers recognized in upstream identity records
var automatedRoles = map[string]struct{}{
	"automated": {},
	"system":    {},
	"bot":       {},
}

// KindFromRoles folds a role list into an ActorKind. Any role outside
// the automated markers makes the actor human.
func KindFromRoles(roles []string) ActorKind {
	if len(roles) == 0 {
		return ActorHuman
	}
	for _, r := range roles {
		if _, ok := automatedRoles[r]; !ok {
			return ActorHuman
		}
	}
	return ActorAutomated
}

// NewActor builds an actor with its kind derived from roles.
func NewActor(id string, roles ...string) Actor {
	return Actor{ID: id, Kind: KindFromRoles(roles), Roles: roles}
}
