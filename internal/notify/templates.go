package notify

import "fmt"

// Canned notification content for every lifecycle event.

func ListingClaimed(receiverName, listingTitle string) Notification {
	return Notification{
		Type:     "listing_claimed",
		Title:    "Listing Claimed!",
		Message:  fmt.Sprintf("%s has claimed your listing %q. Please confirm or reject the claim.", receiverName, listingTitle),
		Priority: "high",
	}
}

func ClaimConfirmed(donorName, listingTitle string) Notification {
	return Notification{
		Type:     "claim_confirmed",
		Title:    "Claim Confirmed!",
		Message:  fmt.Sprintf("Your claim for %q has been confirmed by %s. You can now proceed with pickup.", listingTitle, donorName),
		Priority: "high",
	}
}

func ClaimRejected(listingTitle string) Notification {
	return Notification{
		Type:     "claim_rejected",
		Title:    "Claim Rejected",
		Message:  fmt.Sprintf("Your claim for %q was not accepted. The listing is available for others.", listingTitle),
		Priority: "medium",
	}
}

func ListingCompleted(listingTitle string, points int) Notification {
	return Notification{
		Type:     "listing_completed",
		Title:    "Donation Completed!",
		Message:  fmt.Sprintf("Your donation %q has been completed. You earned %d points!", listingTitle, points),
		Priority: "medium",
	}
}

func ListingExpired(listingTitle string) Notification {
	return Notification{
		Type:     "listing_expired",
		Title:    "Listing Expired",
		Message:  fmt.Sprintf("Your listing %q has expired and is no longer available.", listingTitle),
		Priority: "low",
	}
}

func FallbackTriggered(listingTitle, checkpointName string) Notification {
	return Notification{
		Type:     "fallback_triggered",
		Title:    "Fallback Activated",
		Message:  fmt.Sprintf("Your listing %q has been routed to %s due to no claims.", listingTitle, checkpointName),
		Priority: "medium",
	}
}

func RatingReceived(rating int) Notification {
	title := "New Rating"
	if rating >= 4 {
		title = "Great Rating!"
	}
	return Notification{
		Type:     "rating_received",
		Title:    title,
		Message:  fmt.Sprintf("You received a %d-star rating.", rating),
		Priority: "low",
	}
}

func AccountBanned(reason string) Notification {
	return Notification{
		Type:     "account_banned",
		Title:    "Account Suspended",
		Message:  fmt.Sprintf("Your account has been suspended. Reason: %s", reason),
		Priority: "urgent",
	}
}
