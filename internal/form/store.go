package form

import "github.com/san-kum/fk3r/internal/kinematics"

// Store owns the joint state behind the form. Edit is the only way the
// state changes after construction, apart from Reset.
type Store struct {
	initial kinematics.JointState
	state   kinematics.JointState
}

func NewStore(initial kinematics.JointState) *Store {
	return &Store{initial: initial, state: initial}
}

func (s *Store) State() kinematics.JointState { return s.state }

// Edit parses raw with parse-or-zero semantics, stores it in field f and
// returns the stored value. Unknown fields are ignored.
func (s *Store) Edit(f Field, raw string) float64 {
	if !f.Valid() {
		return 0
	}
	v := ParseValue(raw)
	f.Set(&s.state, v)
	return v
}

// EditID is Edit addressed by identifier, e.g. EditID("A2", "abc").
func (s *Store) EditID(id, raw string) error {
	f, err := ParseField(id)
	if err != nil {
		return err
	}
	s.Edit(f, raw)
	return nil
}

// Reset restores the state the store was created with.
func (s *Store) Reset() { s.state = s.initial }

func (s *Store) View() View { return Render(s.state) }
