// Package catalog holds the hand-authored seed data the registries are
// populated with at startup: the core task taxonomy, the nine key
// challenges with their impact assessments, the candidate solutions, and
// the assistant command surface. The entries follow the taxonomy laid out
// in "Challenges and Paths Towards AI for Software Engineering".
package catalog
