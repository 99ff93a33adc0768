// Package backup mirrors the backups of replaced documents to object storage.
//
// Local ".bak" files are the primary backup; the archive keeps an additional copy
// per reconcile run under "backups/<run-id>/<file name>" so a backup survives the
// next run overwriting the local one.
package backup
