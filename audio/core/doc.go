// Package core provides small numeric helpers shared by the audio packages.
package core
