// Package inngestfilewatch allows inngestfiledata to reload event files automatically whenever they are
// modified. The two packages are separate so as to avoid bringing in the fsnotify dependency for users
// who do not need automatic reloading.
package inngestfilewatch
