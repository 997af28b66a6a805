package resumeforge

import (
	"context"

	"github.com/resumeforge/resumeforge-go/core/apiclient"
	"github.com/resumeforge/resumeforge-go/core/cache"
	"github.com/resumeforge/resumeforge-go/core/validate"
)

// SubscriptionsService manages plan membership and payments.
type SubscriptionsService struct {
	client *Client
}

// Plans returns the purchasable subscription plans.
func (s *SubscriptionsService) Plans(ctx context.Context) ([]SubscriptionPlan, error) {
	return cache.Read(ctx, s.client.data, "subscription-plans", stalePlans, func(ctx context.Context) ([]SubscriptionPlan, error) {
		return apiclient.GetList[SubscriptionPlan](ctx, s.client.api, "/subscriptions/plans/")
	})
}

// Current returns the account's subscription, or nil when the account has
// none. An absent subscription is an ordinary answer, not an error.
func (s *SubscriptionsService) Current(ctx context.Context) (*Subscription, error) {
	return cache.Read(ctx, s.client.data, "current-subscription", staleDefault, func(ctx context.Context) (*Subscription, error) {
		subs, err := apiclient.GetList[Subscription](ctx, s.client.api, "/subscriptions/")
		if err != nil {
			return nil, err
		}
		if len(subs) == 0 {
			return nil, nil
		}
		return &subs[0], nil
	})
}

// Create subscribes the account to a plan.
func (s *SubscriptionsService) Create(ctx context.Context, planID int, autoRenew bool) (Subscription, error) {
	return cache.Mutate(ctx, s.client.data, cache.MutationSpec{
		Invalidates: []string{"current-subscription"},
		Success:     "Subscription created successfully",
		Failure:     "Failed to create subscription",
	}, func(ctx context.Context) (Subscription, error) {
		var sub Subscription
		err := s.client.api.Post(ctx, "/subscriptions/", map[string]any{
			"plan":          planID,
			"is_auto_renew": autoRenew,
		}, &sub)
		return sub, err
	})
}

// Cancel cancels a subscription.
func (s *SubscriptionsService) Cancel(ctx context.Context, id int) (Subscription, error) {
	return cache.Mutate(ctx, s.client.data, cache.MutationSpec{
		Invalidates: []string{"current-subscription"},
		Success:     "Subscription cancelled successfully",
		Failure:     "Failed to cancel subscription",
	}, func(ctx context.Context) (Subscription, error) {
		var sub Subscription
		err := s.client.api.Post(ctx, "/subscriptions/"+itoa(id)+"/cancel/", nil, &sub)
		return sub, err
	})
}

// Renew renews a cancelled or expiring subscription.
func (s *SubscriptionsService) Renew(ctx context.Context, id int) (Subscription, error) {
	return cache.Mutate(ctx, s.client.data, cache.MutationSpec{
		Invalidates: []string{"current-subscription"},
		Success:     "Subscription renewed successfully",
		Failure:     "Failed to renew subscription",
	}, func(ctx context.Context) (Subscription, error) {
		var sub Subscription
		err := s.client.api.Post(ctx, "/subscriptions/"+itoa(id)+"/renew/", nil, &sub)
		return sub, err
	})
}

// Transactions returns the account's payment history.
func (s *SubscriptionsService) Transactions(ctx context.Context) ([]Transaction, error) {
	return cache.Read(ctx, s.client.data, "transactions", staleDefault, func(ctx context.Context) ([]Transaction, error) {
		return apiclient.GetList[Transaction](ctx, s.client.api, "/subscriptions/transactions/")
	})
}

// CreateTransaction starts a payment. No notification fires here: payment
// feedback belongs to the gateway flow that follows.
func (s *SubscriptionsService) CreateTransaction(ctx context.Context, params TransactionParams) (Transaction, error) {
	if err := validate.Struct(params); err != nil {
		return Transaction{}, err
	}

	var tx Transaction
	if err := s.client.api.Post(ctx, "/subscriptions/transactions/", params, &tx); err != nil {
		return Transaction{}, err
	}
	s.client.data.Invalidate(ctx, "transactions")
	return tx, nil
}

// ProcessPayment submits gateway payment data for a pending transaction. A
// completed payment activates the subscription, so both caches refresh.
func (s *SubscriptionsService) ProcessPayment(ctx context.Context, transactionID int, paymentData map[string]any) (Transaction, error) {
	var tx Transaction
	if err := s.client.api.Post(ctx, "/subscriptions/transactions/"+itoa(transactionID)+"/process_payment/", paymentData, &tx); err != nil {
		return Transaction{}, err
	}
	s.client.data.Invalidate(ctx, "transactions")
	s.client.data.Invalidate(ctx, "current-subscription")
	return tx, nil
}
