// Package kitchen provides the timed pizza actions: cook, deliver and pick up.
//
// # Overview
//
// Each action is wrapped by Timer.Measure, which times one invocation of the
// underlying action, writes a line such as "Delivered in 1.2e-06s" to the
// console, records the duration, and then invokes the action once more to
// produce the returned result.
//
// The double invocation is deliberate and observable: an action with side
// effects runs twice per call.
//
// # Usage
//
//	k := kitchen.New(kitchen.WithOutput(os.Stdout))
//	if err := k.Deliver(ctx, pizza.NewMargherita()); err != nil {
//	    return err
//	}
//
// # Metrics
//
// Durations are observed in the pizza_action_duration_seconds histogram,
// labeled by action name.
package kitchen
