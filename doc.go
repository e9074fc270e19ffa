/*
Package i18n-sheets keeps the i18next locale files of a web application in sync with a Google Sheets
worksheet used by translators.

i18n-sheets is run from the project root (or with --root) and reads its settings from the environment,
optionally seeded from a .env.local file. The worksheet is accessed with a Google service account.

i18n-sheets supports the following commands:

  - download, to replace the <locales>/<language>/common.json files with the worksheet translations
  - upload, to scan the source code for translation keys and replace the worksheet with the keys in the
    base language file, flagged as used or unused, plus any new keys found in the source
  - get, to download the worksheet as a TSV file
  - put, to restore a TSV file to the worksheet
  - version, to display the current version
*/
package i18nsheets
