package service

import "errors"

var (
	ErrDuplicateName        = errors.New("a team with that name already exists")
	ErrDuplicateRoom        = errors.New("a team in that room already exists")
	ErrNotFound             = errors.New("team not found")
	ErrAmbiguousContext     = errors.New("need a room context or an explicit team name")
	ErrUnresolvableIdentity = errors.New("could not build a valid chat identity")
	ErrAlreadyMember        = errors.New("already a member of the team")
	ErrNotAMember           = errors.New("not a member of the team")
	ErrNoMembers            = errors.New("the team has no members yet")
	ErrAlreadyActive        = errors.New("a standup is already running for the team")
	ErrNoActiveSession      = errors.New("no active standup for the team")
	ErrDeliveryFailed       = errors.New("digest delivery failed")
)
