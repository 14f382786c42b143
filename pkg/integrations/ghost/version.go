package ghostintegration

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Capability names an optional feature gated behind a minimum Ghost version.
type Capability string

const (
	CapabilityMembers             Capability = "members"
	CapabilityMemberLabels        Capability = "member labels"
	CapabilityMemberComplimentary Capability = "member complimentary plan"
	CapabilityMemberNewsletters   Capability = "member newsletters"
	CapabilityMemberSearch        Capability = "member search"
	CapabilitySubscribers         Capability = "subscribers"
)

// capabilityRanges is the registry of version requirements the action mappers
// gate on. Actions reference capabilities by name instead of re-declaring
// range literals, which keeps the strictest-wins rule mechanically
// computable. Triggers carry their ranges in triggerConfig instead, because
// their failure messages name the trigger family rather than the feature.
var capabilityRanges = map[Capability]string{
	CapabilityMembers:             ">=3.0.0",
	CapabilityMemberLabels:        ">=3.6.0",
	CapabilityMemberComplimentary: ">=3.36.0",
	CapabilityMemberNewsletters:   ">=4.46.0",
	CapabilityMemberSearch:        ">=3.0.0",
	CapabilitySubscribers:         "<3.0.0",
}

// RequiredRange returns the semver range a capability demands.
func (c Capability) RequiredRange() string {
	return capabilityRanges[c]
}

// floor is the lowest version a capability's range admits, used to order
// capabilities by strictness. Upper-bounded ranges such as the subscribers
// one have no floor and sort lowest.
func (c Capability) floor() *semver.Version {
	rng := capabilityRanges[c]
	if !strings.HasPrefix(rng, ">=") {
		return semver.New(0, 0, 0, "", "")
	}

	floor, err := semver.NewVersion(strings.TrimPrefix(rng, ">="))
	if err != nil {
		return semver.New(0, 0, 0, "", "")
	}

	return floor
}

// strictestCapability picks the capability with the highest minimum version
// among those triggered by the fields present in one action invocation, so a
// single gate check covers every optional feature in use.
func strictestCapability(base Capability, others ...Capability) Capability {
	strictest := base

	for _, capability := range others {
		if capability.floor().GreaterThan(strictest.floor()) {
			strictest = capability
		}
	}

	return strictest
}

// VersionGate probes the remote site's self-reported version before a gated
// call is sent. Ghost may silently ignore unknown fields rather than reject
// them, so unsupported features have to be refused client-side.
type VersionGate struct {
	client *AdminClient
}

// NewVersionGate builds a gate over the base API namespace. The gate never
// caches: every check is a live round trip.
func NewVersionGate(credential GhostCredential, opts ...AdminClientOption) (*VersionGate, error) {
	client, err := NewAdminClient(credential, APIVersionV2, opts...)
	if err != nil {
		return nil, err
	}

	return &VersionGate{client: client}, nil
}

// CheckCapability gates on a registered capability's range.
func (g *VersionGate) CheckCapability(ctx context.Context, capability Capability) (*semver.Version, error) {
	return g.CheckVersion(ctx, capability.RequiredRange(), string(capability))
}

// CheckVersion fetches the site's reported version, coerces it to
// major.minor.patch and verifies it satisfies requiredRange. The failure
// message quotes the raw reported string, not the coerced one.
func (g *VersionGate) CheckVersion(ctx context.Context, requiredRange, capabilityName string) (*semver.Version, error) {
	site, err := g.client.ReadSite(ctx)
	if err != nil {
		return nil, err
	}

	version, err := coerceVersion(site.Version)
	if err != nil {
		return nil, fmt.Errorf("failed to parse reported Ghost version %q: %w", site.Version, err)
	}

	constraint, err := semver.NewConstraint(requiredRange)
	if err != nil {
		return nil, fmt.Errorf("invalid version range %q: %w", requiredRange, err)
	}

	if !constraint.Check(version) {
		return nil, &HaltedError{
			Message: fmt.Sprintf(
				"The version of Ghost your site is using does not support %s. Supported version range is %s, you are using %s.",
				capabilityName, requiredRange, site.Version,
			),
		}
	}

	return version, nil
}

// coerceVersion normalizes partial versions like "3.0" to full
// major.minor.patch form.
func coerceVersion(reported string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimSpace(reported))
}
