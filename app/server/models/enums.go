package models

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleGeneral Role = "general"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleGeneral
}

// Grade is the organizational rank, independent from the system Role.
type Grade string

const (
	GradeApprentice Grade = "apprentice"
	GradeCompanion  Grade = "companion"
	GradeMaster     Grade = "master"
)

var gradeLevels = map[Grade]int{
	GradeApprentice: 1,
	GradeCompanion:  2,
	GradeMaster:     3,
}

func (g Grade) Valid() bool {
	_, ok := gradeLevels[g]
	return ok
}

// CanAccess reports whether holders of g may see material restricted to target.
// A higher grade includes every lower one.
func (g Grade) CanAccess(target Grade) bool {
	have, ok := gradeLevels[g]
	if !ok {
		return false
	}
	want, ok := gradeLevels[target]
	if !ok {
		return false
	}
	return have >= want
}

// Accessible lists the grades whose material holders of g may see, lowest first.
func (g Grade) Accessible() []Grade {
	var grades []Grade
	for _, candidate := range []Grade{GradeApprentice, GradeCompanion, GradeMaster} {
		if g.CanAccess(candidate) {
			grades = append(grades, candidate)
		}
	}
	return grades
}
