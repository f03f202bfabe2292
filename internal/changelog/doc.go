// Package changelog turns a range of git history into a changelog.
//
// The Builder decides which two tags delimit the changelog (explicit
// inputs first, otherwise the two highest version tags), fetches the commits
// in between through a git.HistoryReader and renders them as plain text and
// as markdown with links to the hosting platform. Commits keep the newest-first
// order the reader returns; nothing here re-sorts them.
package changelog
