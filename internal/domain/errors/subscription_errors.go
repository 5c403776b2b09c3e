package errors

import "errors"

var (
	// ErrPlanNotFound indicates the requested subscription plan does not exist
	ErrPlanNotFound = errors.New("subscription plan not found")

	// ErrPlanNameTaken indicates a plan with the same name already exists
	ErrPlanNameTaken = errors.New("subscription plan name already in use")

	// ErrNoActiveSubscription indicates that the user has no active subscription
	ErrNoActiveSubscription = errors.New("no active subscription found")

	// ErrSubscriptionNotFound indicates that the specified subscription was not found
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrSubscriptionExists indicates the user already has a subscription
	ErrSubscriptionExists = errors.New("user already has a subscription")

	// ErrInvalidInterval indicates an unsupported billing interval
	ErrInvalidInterval = errors.New("invalid billing interval")
)
