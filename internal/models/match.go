package models

type Match struct {
	User              User       `json:"user"`
	Name              string     `json:"name"`
	MatchScore        int        `json:"match_score"`
	Deterministic     int        `json:"deterministic_score"`
	TeachingSkills    []Skill    `json:"teaching_skills"`
	LearningInterests []Interest `json:"learning_interests"`
}
